// Package sys is the unsafe boundary of rawsock: the only place raw system
// calls into the kernel socket layer occur. It marshals BindTargets into
// wire records, submits them with their exact compile-time byte sizes, and
// hands back the kernel's raw integer results.
//
// Every function follows the raw OS convention: a non-negative return is the
// call's result, a negative return is the negated errno of the failure.
// Wrapping raw results into error values is the socket package's job.
package sys
