// Package rawsock provides a minimal, safe surface over raw BSD socket
// primitives: socket creation, address binding and connection, listening,
// accepting, reading, writing, and descriptor teardown.
//
// Application code never issues an unsafe system call directly, and the layer
// adds no behavior of its own: the same error codes, the same byte layouts,
// and the same blocking semantics as the underlying calls.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	rawsock/          Root package with address-family value types and the
//	                  dotted-quad parser
//	├── wire/         Byte-exact sockaddr records and byte-order conversion
//	├── sys/          Syscall adapter, the only unsafe boundary
//	├── socket/       Owning descriptor handle and its lifecycle state machine
//	└── errors/       Uniform structured error type for failed OS calls
//
// # Quick Start
//
// Serve a Unix-domain stream socket:
//
//	s, err := socket.New(rawsock.FamilyUnix, rawsock.Stream)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	if err := s.Bind(rawsock.UnixTarget{Path: "/tmp/echo.sock"}); err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.Listen(16); err != nil {
//	    log.Fatal(err)
//	}
//
//	peer, _, err := s.AcceptUnix()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer peer.Close()
//
// # Byte Ordering
//
// Callers work in host order everywhere. Conversion to network order happens
// exactly once, inside the wire package, when a BindTarget is lowered into a
// sockaddr record. ParseInet4 likewise returns a host-order value; the wire
// layer performs the swap before anything reaches the kernel.
//
// # Thread Safety
//
// A Socket is exclusively owned and NOT safe for concurrent use. Interleaved
// calls from multiple goroutines (one reading while another closes) race on
// the descriptor number; synchronize externally or confine each handle to a
// single goroutine.
//
// # Target ABI
//
// The package targets the Linux socket ABI. Numeric family, type, and
// protocol values are an ABI contract and are written verbatim into wire
// records.
package rawsock
