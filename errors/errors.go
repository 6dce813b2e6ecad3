package errors

import (
	"strings"
	"syscall"
)

// Op identifies the socket operation whose OS call failed.
type Op string

const (
	OpSocket  Op = "socket"
	OpBind    Op = "bind"
	OpConnect Op = "connect"
	OpListen  Op = "listen"
	OpAccept  Op = "accept"
	OpRead    Op = "read"
	OpWrite   Op = "write"
	OpFcntl   Op = "fcntl"
	OpClose   Op = "close"
)

// Error is the uniform error type for a failed OS call.
type Error struct {
	Op     Op
	Errno  syscall.Errno
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(e.Errno.Error())

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Unwrap exposes the errno so errors.Is(err, unix.EAGAIN) and friends work.
func (e *Error) Unwrap() error {
	return e.Errno
}

// Is reports whether target matches this error.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Errno == t.Errno
	}
	return false
}

// Code returns the failing call's raw OS return value, the negated errno.
func (e *Error) Code() int {
	return -int(e.Errno)
}

// New creates an Error for op with the given errno.
func New(op Op, errno syscall.Errno) *Error {
	return &Error{Op: op, Errno: errno}
}

// FromReturn converts a raw adapter result into an error. Non-negative
// results are success and yield nil; negative results carry the negated
// errno.
func FromReturn(op Op, ret int) error {
	if ret >= 0 {
		return nil
	}
	return &Error{Op: op, Errno: syscall.Errno(-ret)}
}

// Closed creates the error reported for any operation attempted on a handle
// whose descriptor has already been released.
func Closed(op Op) *Error {
	return &Error{Op: op, Errno: syscall.EBADF, Detail: "socket already closed"}
}
