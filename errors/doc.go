// Package errors provides the structured error type used throughout rawsock.
//
// The error taxonomy is deliberately flat: every failure is "an OS call
// failed", identified by the operation that issued the call and the errno the
// kernel returned. No transient/permanent classification happens at this
// layer; that is the caller's job (for example treating EAGAIN as retryable
// on a nonblocking socket).
//
// Errors interoperate with the standard library:
//
//	n, err := s.Read(buf)
//	if errors.Is(err, unix.EAGAIN) {
//	    // nonblocking socket, nothing to read yet
//	}
//
// Code returns the raw negative OS return value for callers that want the
// original syscall convention back.
package errors
