package wire

import (
	"bytes"
	"strings"
	"testing"
	"unsafe"

	"github.com/wirebind/rawsock"
)

// The declared sockaddr length submitted on every call is the record's
// compile-time size; the constants must match the in-memory layout exactly.
func TestSizeofConstants(t *testing.T) {
	if got := unsafe.Sizeof(Inet4{}); got != SizeofInet4 {
		t.Errorf("sizeof(Inet4) = %d, want %d", got, SizeofInet4)
	}
	if got := unsafe.Sizeof(Inet6{}); got != SizeofInet6 {
		t.Errorf("sizeof(Inet6) = %d, want %d", got, SizeofInet6)
	}
	if got := unsafe.Sizeof(Unix{}); got != SizeofUnix {
		t.Errorf("sizeof(Unix) = %d, want %d", got, SizeofUnix)
	}
}

func TestEmptyRecordFamilies(t *testing.T) {
	if got := EmptyInet4().Family; got != uint16(rawsock.FamilyInet4) {
		t.Errorf("EmptyInet4 family = %d, want %d", got, rawsock.FamilyInet4)
	}
	if got := EmptyInet6().Family; got != uint16(rawsock.FamilyInet6) {
		t.Errorf("EmptyInet6 family = %d, want %d", got, rawsock.FamilyInet6)
	}
	if got := EmptyUnix().Family; got != uint16(rawsock.FamilyUnix) {
		t.Errorf("EmptyUnix family = %d, want %d", got, rawsock.FamilyUnix)
	}
}

func TestEmptyRecordsZeroed(t *testing.T) {
	rec4 := EmptyInet4()
	if rec4.Port != 0 || rec4.Addr != 0 || rec4.Zero != 0 {
		t.Errorf("EmptyInet4 has nonzero fields: %+v", rec4)
	}

	rec6 := EmptyInet6()
	if rec6.Port != 0 || rec6.Flowinfo != 0 || rec6.ScopeID != 0 || rec6.Addr != [16]byte{} {
		t.Errorf("EmptyInet6 has nonzero fields: %+v", rec6)
	}

	recU := EmptyUnix()
	if recU.Path != [PathMax]byte{} {
		t.Error("EmptyUnix has nonzero path bytes")
	}
}

func TestNewInet4NetworkOrder(t *testing.T) {
	rec := NewInet4(0x7f000001, 0x1234)

	// Reinterpret the record as raw bytes and check the wire positions.
	raw := (*[SizeofInet4]byte)(unsafe.Pointer(&rec))

	if raw[2] != 0x12 || raw[3] != 0x34 {
		t.Errorf("port bytes = %#02x %#02x, want 0x12 0x34", raw[2], raw[3])
	}
	if !bytes.Equal(raw[4:8], []byte{127, 0, 0, 1}) {
		t.Errorf("address bytes = %v, want [127 0 0 1]", raw[4:8])
	}
}

func TestNewInet6ByteSequence(t *testing.T) {
	rec := NewInet6(0x0102030405060708, 0x090a0b0c0d0e0f10, 443)

	want := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if rec.Addr != want {
		t.Errorf("address = %v, want %v", rec.Addr, want)
	}
	if rec.Port != Htons(443) {
		t.Errorf("port = %#04x, want %#04x", rec.Port, Htons(443))
	}
	if rec.Flowinfo != 0 || rec.ScopeID != 0 {
		t.Errorf("flowinfo/scope nonzero: %+v", rec)
	}
}

func TestNewUnixPathLayout(t *testing.T) {
	for _, n := range []int{0, 1, 53, 106, 107} {
		path := strings.Repeat("p", n)
		rec := NewUnix(path)

		if got := string(rec.Path[:n]); got != path {
			t.Fatalf("length %d: path bytes do not round-trip", n)
		}
		for i := n; i < PathMax; i++ {
			if rec.Path[i] != 0 {
				t.Fatalf("length %d: byte %d = %d, want NUL padding", n, i, rec.Path[i])
			}
		}
	}
}

func TestNewUnixTruncatesLongPaths(t *testing.T) {
	for _, n := range []int{108, 109, 200} {
		path := strings.Repeat("q", n)
		rec := NewUnix(path)

		if got := string(rec.Path[:PathMax-1]); got != path[:PathMax-1] {
			t.Fatalf("length %d: truncated path mismatch", n)
		}
		if rec.Path[PathMax-1] != 0 {
			t.Fatalf("length %d: final byte = %d, want NUL terminator", n, rec.Path[PathMax-1])
		}
	}
}

func TestInet4TargetRoundTrip(t *testing.T) {
	rec := NewInet4(0x7f402008, 8080)
	got := rec.Target()

	if got.Addr != 0x7f402008 {
		t.Errorf("Addr = %#08x, want 0x7f402008", got.Addr)
	}
	if got.Port != 8080 {
		t.Errorf("Port = %d, want 8080", got.Port)
	}
}

func TestInet6TargetRoundTrip(t *testing.T) {
	rec := NewInet6(0xfe80000000000000, 0x0000000000000001, 22)
	got := rec.Target()

	if got.Hi != 0xfe80000000000000 || got.Lo != 1 {
		t.Errorf("address = %#016x %#016x, want fe80::1 halves", got.Hi, got.Lo)
	}
	if got.Port != 22 {
		t.Errorf("Port = %d, want 22", got.Port)
	}
}

func TestUnixTargetRoundTrip(t *testing.T) {
	rec := NewUnix("/run/rawsock/echo.sock")
	got := rec.Target()

	if got.Path != "/run/rawsock/echo.sock" {
		t.Errorf("Path = %q, want %q", got.Path, "/run/rawsock/echo.sock")
	}
}
