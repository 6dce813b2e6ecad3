// Package socket provides the owning wrapper around a single socket
// descriptor: creation, bind/connect/listen, the accept loop, blocking I/O,
// blocking-mode control, and exactly-once descriptor release.
//
// A Socket moves through the states
//
//	Created → {Bound | Connected} → Listening → Closed
//
// with Closed terminal: every operation on a closed handle fails with EBADF.
// Handles produced by the Accept variants start in Created, already
// connected to their peer.
//
// Release is guaranteed even when a handle is dropped without Close: a
// finalizer covers the leak case, and a one-shot guard makes explicit Close
// followed by finalization release the descriptor exactly once.
//
// A Socket is movable but must not be shared: no operation is safe to invoke
// concurrently with another on the same handle.
package socket
