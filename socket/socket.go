//go:build linux

package socket

import (
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wirebind/rawsock"
	"github.com/wirebind/rawsock/errors"
	"github.com/wirebind/rawsock/sys"
	"github.com/wirebind/rawsock/wire"
)

// Socket owns exactly one socket descriptor for its entire lifetime. The
// descriptor is released exactly once, by Close or by the finalizer,
// whichever runs first.
type Socket struct {
	fd    int
	state State
}

// New creates a socket with the default protocol (ProtoIP, letting the
// kernel pick the protocol appropriate for the socket type).
func New(family rawsock.Family, typ rawsock.Type) (*Socket, error) {
	return NewProto(family, typ, rawsock.ProtoIP)
}

// NewProto creates a socket with an explicit protocol.
func NewProto(family rawsock.Family, typ rawsock.Type, proto rawsock.Protocol) (*Socket, error) {
	fd := sys.Open(family, typ, proto)
	if fd < 0 {
		return nil, errors.FromReturn(errors.OpSocket, fd)
	}
	return newOwned(fd), nil
}

// newOwned wraps a fresh descriptor in a handle in state Created and arms
// the finalizer that covers handles dropped without Close.
func newOwned(fd int) *Socket {
	s := &Socket{fd: fd, state: StateCreated}
	runtime.SetFinalizer(s, (*Socket).finalize)
	Logger().Debug("socket created", zap.Int("fd", fd))
	return s
}

// Fd returns the owned descriptor number, or -1 once the handle is closed.
func (s *Socket) Fd() int {
	if s.state == StateClosed {
		return -1
	}
	return s.fd
}

// State returns the handle's position in its lifecycle.
func (s *Socket) State() State {
	return s.state
}

// Bind attaches the socket to a local address.
func (s *Socket) Bind(target rawsock.BindTarget) error {
	if s.state == StateClosed {
		return errors.Closed(errors.OpBind)
	}
	if err := errors.FromReturn(errors.OpBind, sys.Bind(s.fd, target)); err != nil {
		return err
	}
	s.transition(StateBound)
	return nil
}

// Connect connects the socket to a remote address.
func (s *Socket) Connect(target rawsock.BindTarget) error {
	if s.state == StateClosed {
		return errors.Closed(errors.OpConnect)
	}
	if err := errors.FromReturn(errors.OpConnect, sys.Connect(s.fd, target)); err != nil {
		return err
	}
	s.transition(StateConnected)
	return nil
}

// Listen marks the socket as passive, able to accept connections.
func (s *Socket) Listen(backlog int) error {
	if s.state == StateClosed {
		return errors.Closed(errors.OpListen)
	}
	if err := errors.FromReturn(errors.OpListen, sys.Listen(s.fd, backlog)); err != nil {
		return err
	}
	s.transition(StateListening)
	return nil
}

// AcceptInet4 accepts a connection on an IPv4 socket, returning the child
// handle and the peer endpoint in host order.
func (s *Socket) AcceptInet4() (*Socket, rawsock.Inet4Target, error) {
	if s.state == StateClosed {
		return nil, rawsock.Inet4Target{}, errors.Closed(errors.OpAccept)
	}
	nfd, rec, got := sys.AcceptInet4(s.fd)
	child, err := adopt(nfd, got, wire.SizeofInet4)
	if err != nil {
		return nil, rawsock.Inet4Target{}, err
	}
	return child, rec.Target(), nil
}

// AcceptInet6 accepts a connection on an IPv6 socket, returning the child
// handle and the peer endpoint in host order.
func (s *Socket) AcceptInet6() (*Socket, rawsock.Inet6Target, error) {
	if s.state == StateClosed {
		return nil, rawsock.Inet6Target{}, errors.Closed(errors.OpAccept)
	}
	nfd, rec, got := sys.AcceptInet6(s.fd)
	child, err := adopt(nfd, got, wire.SizeofInet6)
	if err != nil {
		return nil, rawsock.Inet6Target{}, err
	}
	return child, rec.Target(), nil
}

// AcceptUnix accepts a connection on a Unix-domain socket, returning the
// child handle and the peer path.
func (s *Socket) AcceptUnix() (*Socket, rawsock.UnixTarget, error) {
	if s.state == StateClosed {
		return nil, rawsock.UnixTarget{}, errors.Closed(errors.OpAccept)
	}
	nfd, rec, got := sys.AcceptUnix(s.fd)
	child, err := adopt(nfd, got, wire.SizeofUnix)
	if err != nil {
		return nil, rawsock.UnixTarget{}, err
	}
	return child, rec.Target(), nil
}

// adopt turns a raw accept result into an owned child handle. A peer record
// whose kernel-written length differs from the expected structure size is a
// protocol mismatch: the call fails even though the kernel handed over a
// live descriptor, so that descriptor is released before the error is
// reported.
func adopt(nfd int, got, want uint32) (*Socket, error) {
	if nfd < 0 {
		return nil, errors.FromReturn(errors.OpAccept, nfd)
	}
	if got != want {
		sys.Release(nfd)
		return nil, &errors.Error{Op: errors.OpAccept, Errno: unix.EPROTO, Detail: "peer address length mismatch"}
	}
	return newOwned(nfd), nil
}

// Read reads into p. Zero bytes read signals orderly peer shutdown and is
// returned as (0, nil), not as an error.
func (s *Socket) Read(p []byte) (int, error) {
	if s.state == StateClosed {
		return 0, errors.Closed(errors.OpRead)
	}
	n := sys.Read(s.fd, p)
	if n < 0 {
		return 0, errors.FromReturn(errors.OpRead, n)
	}
	return n, nil
}

// Write writes p, returning the number of bytes the kernel consumed.
func (s *Socket) Write(p []byte) (int, error) {
	if s.state == StateClosed {
		return 0, errors.Closed(errors.OpWrite)
	}
	n := sys.Write(s.fd, p)
	if n < 0 {
		return 0, errors.FromReturn(errors.OpWrite, n)
	}
	return n, nil
}

// SetBlocking sets or clears O_NONBLOCK on the descriptor's flag word. Once
// nonblocking, Read, Write, and the Accept variants may fail immediately
// with EAGAIN; retry loops belong to the caller.
func (s *Socket) SetBlocking(block bool) error {
	if s.state == StateClosed {
		return errors.Closed(errors.OpFcntl)
	}
	flags := sys.Flags(s.fd)
	if flags < 0 {
		return errors.FromReturn(errors.OpFcntl, flags)
	}
	if block {
		flags &^= unix.O_NONBLOCK
	} else {
		flags |= unix.O_NONBLOCK
	}
	return errors.FromReturn(errors.OpFcntl, sys.SetFlags(s.fd, flags))
}

// Block puts the socket in blocking mode.
func (s *Socket) Block() error {
	return s.SetBlocking(true)
}

// Nonblock puts the socket in nonblocking mode.
func (s *Socket) Nonblock() error {
	return s.SetBlocking(false)
}

// Close releases the descriptor. Repeat calls are no-ops: the descriptor is
// released exactly once across the handle's lifetime, and its number is
// never touched again by this handle afterwards.
func (s *Socket) Close() error {
	if s.state == StateClosed {
		return nil
	}
	sys.Release(s.fd)
	s.transition(StateClosed)
	s.fd = -1
	runtime.SetFinalizer(s, nil)
	return nil
}

// finalize releases the descriptor of a handle that went out of scope
// without an explicit Close.
func (s *Socket) finalize() {
	if s.state != StateClosed {
		sys.Release(s.fd)
		s.state = StateClosed
		s.fd = -1
	}
}

func (s *Socket) transition(to State) {
	Logger().Debug("state transition",
		zap.Int("fd", s.fd),
		zap.Stringer("from", s.state),
		zap.Stringer("to", to))
	s.state = to
}
