//go:build linux

package sys

import (
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wirebind/rawsock"
	"github.com/wirebind/rawsock/wire"
)

// ret collapses a raw syscall result into the adapter's return convention:
// the call's non-negative result, or the negated errno.
func ret(r uintptr, errno unix.Errno) int {
	if errno != 0 {
		return -int(errno)
	}
	return int(r)
}

// Open creates a new socket descriptor via socket(2).
func Open(family rawsock.Family, typ rawsock.Type, proto rawsock.Protocol) int {
	r, _, errno := unix.Syscall(unix.SYS_SOCKET, uintptr(family), uintptr(typ), uintptr(proto))
	Logger().Debug("socket",
		zap.Stringer("family", family),
		zap.Stringer("type", typ),
		zap.Stringer("proto", proto),
		zap.Int("ret", ret(r, errno)))
	return ret(r, errno)
}

// sockaddrCall submits a wire record to bind(2) or connect(2). The declared
// length is always the record's compile-time size.
func sockaddrCall(trap uintptr, fd int, rec unsafe.Pointer, size uintptr) int {
	r, _, errno := unix.Syscall(trap, uintptr(fd), uintptr(rec), size)
	return ret(r, errno)
}

// dispatch lowers a BindTarget into its wire record and submits it through
// the given system call.
func dispatch(trap uintptr, fd int, target rawsock.BindTarget) int {
	switch t := target.(type) {
	case rawsock.Inet4Target:
		rec := wire.NewInet4(t.Addr, t.Port)
		return sockaddrCall(trap, fd, unsafe.Pointer(&rec), wire.SizeofInet4)
	case rawsock.Inet6Target:
		rec := wire.NewInet6(t.Hi, t.Lo, t.Port)
		return sockaddrCall(trap, fd, unsafe.Pointer(&rec), wire.SizeofInet6)
	case rawsock.UnixTarget:
		rec := wire.NewUnix(t.Path)
		return sockaddrCall(trap, fd, unsafe.Pointer(&rec), wire.SizeofUnix)
	default:
		return -int(unix.EAFNOSUPPORT)
	}
}

// Bind attaches fd to the target address via bind(2).
func Bind(fd int, target rawsock.BindTarget) int {
	r := dispatch(unix.SYS_BIND, fd, target)
	Logger().Debug("bind", zap.Int("fd", fd), zap.Stringer("family", target.Family()), zap.Int("ret", r))
	return r
}

// Connect connects fd to the target address via connect(2).
func Connect(fd int, target rawsock.BindTarget) int {
	r := dispatch(unix.SYS_CONNECT, fd, target)
	Logger().Debug("connect", zap.Int("fd", fd), zap.Stringer("family", target.Family()), zap.Int("ret", r))
	return r
}

// Listen marks fd as a passive socket via listen(2).
func Listen(fd, backlog int) int {
	r, _, errno := unix.Syscall(unix.SYS_LISTEN, uintptr(fd), uintptr(backlog), 0)
	Logger().Debug("listen", zap.Int("fd", fd), zap.Int("backlog", backlog), zap.Int("ret", ret(r, errno)))
	return ret(r, errno)
}

// accept invokes accept(2) with the caller's record and in/out length.
func accept(fd int, rec unsafe.Pointer, slen *uint32) int {
	r, _, errno := unix.Syscall(unix.SYS_ACCEPT, uintptr(fd), uintptr(rec), uintptr(unsafe.Pointer(slen)))
	return ret(r, errno)
}

// AcceptInet4 accepts a connection on an IPv4 socket. It returns the raw
// accept(2) result, the peer record the kernel filled in, and the address
// length the kernel wrote back. The caller must verify the length equals
// wire.SizeofInet4 before trusting the record.
func AcceptInet4(fd int) (int, wire.Inet4, uint32) {
	rec := wire.EmptyInet4()
	slen := uint32(wire.SizeofInet4)
	r := accept(fd, unsafe.Pointer(&rec), &slen)
	Logger().Debug("accept", zap.Int("fd", fd), zap.Int("ret", r), zap.Uint32("addrlen", slen))
	return r, rec, slen
}

// AcceptInet6 accepts a connection on an IPv6 socket. See AcceptInet4 for
// the return convention.
func AcceptInet6(fd int) (int, wire.Inet6, uint32) {
	rec := wire.EmptyInet6()
	slen := uint32(wire.SizeofInet6)
	r := accept(fd, unsafe.Pointer(&rec), &slen)
	Logger().Debug("accept", zap.Int("fd", fd), zap.Int("ret", r), zap.Uint32("addrlen", slen))
	return r, rec, slen
}

// AcceptUnix accepts a connection on a Unix-domain socket. See AcceptInet4
// for the return convention.
func AcceptUnix(fd int) (int, wire.Unix, uint32) {
	rec := wire.EmptyUnix()
	slen := uint32(wire.SizeofUnix)
	r := accept(fd, unsafe.Pointer(&rec), &slen)
	Logger().Debug("accept", zap.Int("fd", fd), zap.Int("ret", r), zap.Uint32("addrlen", slen))
	return r, rec, slen
}

// Read reads from fd into p via read(2).
func Read(fd int, p []byte) int {
	var buf unsafe.Pointer
	if len(p) > 0 {
		buf = unsafe.Pointer(&p[0])
	}
	r, _, errno := unix.Syscall(unix.SYS_READ, uintptr(fd), uintptr(buf), uintptr(len(p)))
	return ret(r, errno)
}

// Write writes p to fd via write(2).
func Write(fd int, p []byte) int {
	var buf unsafe.Pointer
	if len(p) > 0 {
		buf = unsafe.Pointer(&p[0])
	}
	r, _, errno := unix.Syscall(unix.SYS_WRITE, uintptr(fd), uintptr(buf), uintptr(len(p)))
	return ret(r, errno)
}

// Flags reads fd's file status flag word via fcntl F_GETFL.
func Flags(fd int) int {
	r, _, errno := unix.Syscall(unix.SYS_FCNTL, uintptr(fd), unix.F_GETFL, 0)
	return ret(r, errno)
}

// SetFlags writes fd's file status flag word via fcntl F_SETFL.
func SetFlags(fd, flags int) int {
	r, _, errno := unix.Syscall(unix.SYS_FCNTL, uintptr(fd), unix.F_SETFL, uintptr(flags))
	return ret(r, errno)
}

// Release unconditionally closes the descriptor. close(2) is not retryable
// on error, so no failure is reported to the caller.
func Release(fd int) {
	_, _, _ = unix.Syscall(unix.SYS_CLOSE, uintptr(fd), 0, 0)
	Logger().Debug("close", zap.Int("fd", fd))
}
