package wire

import (
	"encoding/binary"

	"github.com/wirebind/rawsock"
)

// Record sizes in bytes, submitted as the declared sockaddr length on every
// bind, connect, and accept call. A record whose in-memory size differs from
// its constant is an internal bug, not a runtime condition; the tests assert
// the equality with unsafe.Sizeof.
const (
	SizeofInet4 = 16
	SizeofInet6 = 28
	SizeofUnix  = 110
)

// PathMax is the size of the Unix record's path buffer. The final byte is
// reserved for a mandatory NUL terminator, leaving 107 usable bytes.
const PathMax = 108

// Inet4 mirrors struct sockaddr_in. Port and Addr are stored in network
// order.
type Inet4 struct {
	Family uint16
	Port   uint16
	Addr   uint32
	Zero   uint64
}

// Inet6 mirrors struct sockaddr_in6. Port is stored in network order and
// Addr is a big-endian byte sequence.
type Inet6 struct {
	Family   uint16
	Port     uint16
	Flowinfo uint32
	Addr     [16]byte
	ScopeID  uint32
}

// Unix mirrors struct sockaddr_un. Path is NUL-padded.
type Unix struct {
	Family uint16
	Path   [PathMax]byte
}

// EmptyInet4 returns an Inet4 record with its family pre-filled and every
// other field zero. Accept passes such a record to the kernel and relies on
// untouched fields already holding their correct values.
func EmptyInet4() Inet4 {
	return Inet4{Family: uint16(rawsock.FamilyInet4)}
}

// EmptyInet6 returns an Inet6 record with its family pre-filled and every
// other field zero.
func EmptyInet6() Inet6 {
	return Inet6{Family: uint16(rawsock.FamilyInet6)}
}

// EmptyUnix returns a Unix record with its family pre-filled and a zeroed
// path buffer.
func EmptyUnix() Unix {
	return Unix{Family: uint16(rawsock.FamilyUnix)}
}

// NewInet4 lowers a host-order IPv4 endpoint into its wire record,
// converting the port and address to network order.
func NewInet4(addr uint32, port uint16) Inet4 {
	rec := EmptyInet4()
	rec.Port = Htons(port)
	rec.Addr = Htonl(addr)
	return rec
}

// NewInet6 lowers a host-order 128-bit IPv6 address (hi holding the most
// significant 64 bits) and port into its wire record. The address is written
// byte by byte, most significant byte first; there is no separate swap step.
func NewInet6(hi, lo uint64, port uint16) Inet6 {
	rec := EmptyInet6()
	rec.Port = Htons(port)
	binary.BigEndian.PutUint64(rec.Addr[0:8], hi)
	binary.BigEndian.PutUint64(rec.Addr[8:16], lo)
	return rec
}

// NewUnix lowers a socket path into its wire record. Paths longer than
// PathMax-1 bytes are truncated, never rejected, and the terminating NUL is
// always present.
func NewUnix(path string) Unix {
	rec := EmptyUnix()
	n := len(path)
	if n > PathMax-1 {
		n = PathMax - 1
	}
	copy(rec.Path[:n], path[:n])
	rec.Path[n] = 0
	return rec
}

// Target converts a kernel-filled record back into a host-order endpoint.
func (r Inet4) Target() rawsock.Inet4Target {
	return rawsock.Inet4Target{
		Addr: Ntohl(r.Addr),
		Port: Ntohs(r.Port),
	}
}

// Target converts a kernel-filled record back into a host-order endpoint.
func (r Inet6) Target() rawsock.Inet6Target {
	return rawsock.Inet6Target{
		Hi:   binary.BigEndian.Uint64(r.Addr[0:8]),
		Lo:   binary.BigEndian.Uint64(r.Addr[8:16]),
		Port: Ntohs(r.Port),
	}
}

// Target extracts the NUL-terminated path from a kernel-filled record.
func (r Unix) Target() rawsock.UnixTarget {
	n := 0
	for n < PathMax && r.Path[n] != 0 {
		n++
	}
	return rawsock.UnixTarget{Path: string(r.Path[:n])}
}
