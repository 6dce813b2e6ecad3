package errors

import (
	"errors"
	"strings"
	"syscall"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "plain errno",
			err:      &Error{Op: OpBind, Errno: syscall.EADDRINUSE},
			contains: []string{"[bind]", "address already in use"},
		},
		{
			name:     "with detail",
			err:      &Error{Op: OpAccept, Errno: syscall.EPROTO, Detail: "peer address length mismatch"},
			contains: []string{"[accept]", "peer address length mismatch"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := New(OpRead, syscall.EAGAIN)

	if !errors.Is(err, syscall.EAGAIN) {
		t.Error("errors.Is(err, EAGAIN) = false, want true")
	}
	if errors.Is(err, syscall.EBADF) {
		t.Error("errors.Is(err, EBADF) = true, want false")
	}
}

func TestError_Is(t *testing.T) {
	err := New(OpConnect, syscall.ECONNREFUSED)

	if !errors.Is(err, New(OpConnect, syscall.ECONNREFUSED)) {
		t.Error("identical op and errno should match")
	}
	if errors.Is(err, New(OpBind, syscall.ECONNREFUSED)) {
		t.Error("different op should not match")
	}
}

func TestError_Code(t *testing.T) {
	err := New(OpWrite, syscall.EPIPE)

	if got := err.Code(); got != -int(syscall.EPIPE) {
		t.Errorf("Code() = %d, want %d", got, -int(syscall.EPIPE))
	}
}

func TestFromReturn(t *testing.T) {
	if err := FromReturn(OpSocket, 3); err != nil {
		t.Errorf("non-negative result produced error: %v", err)
	}
	if err := FromReturn(OpSocket, 0); err != nil {
		t.Errorf("zero result produced error: %v", err)
	}

	err := FromReturn(OpSocket, -int(syscall.EMFILE))
	if err == nil {
		t.Fatal("negative result produced nil error")
	}
	if !errors.Is(err, syscall.EMFILE) {
		t.Errorf("errno not preserved: %v", err)
	}
}

func TestClosed(t *testing.T) {
	err := Closed(OpRead)

	if !errors.Is(err, syscall.EBADF) {
		t.Errorf("Closed should carry EBADF, got %v", err)
	}
	if !strings.Contains(err.Error(), "already closed") {
		t.Errorf("message %q missing closed detail", err.Error())
	}
}
