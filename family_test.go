//go:build linux

package rawsock

import (
	"testing"

	"golang.org/x/sys/unix"
)

// The numeric values are an ABI contract: they are written verbatim into
// wire records, so they must equal the kernel's constants exactly.

func TestFamilyValues(t *testing.T) {
	tests := []struct {
		family Family
		want   int
	}{
		{FamilyUnspec, unix.AF_UNSPEC},
		{FamilyUnix, unix.AF_UNIX},
		{FamilyInet4, unix.AF_INET},
		{FamilyInet6, unix.AF_INET6},
	}

	for _, tt := range tests {
		if int(tt.family) != tt.want {
			t.Errorf("%s = %d, want %d", tt.family, tt.family, tt.want)
		}
	}
}

func TestTypeValues(t *testing.T) {
	tests := []struct {
		typ  Type
		want int
	}{
		{Stream, unix.SOCK_STREAM},
		{Datagram, unix.SOCK_DGRAM},
		{Raw, unix.SOCK_RAW},
		{SeqPacket, unix.SOCK_SEQPACKET},
		{Packet, unix.SOCK_PACKET},
	}

	for _, tt := range tests {
		if int(tt.typ) != tt.want {
			t.Errorf("%s = %d, want %d", tt.typ, tt.typ, tt.want)
		}
	}
}

func TestProtocolValues(t *testing.T) {
	tests := []struct {
		proto Protocol
		want  int
	}{
		{ProtoIP, unix.IPPROTO_IP},
		{ProtoICMP, unix.IPPROTO_ICMP},
		{ProtoIGMP, unix.IPPROTO_IGMP},
		{ProtoIPIP, unix.IPPROTO_IPIP},
		{ProtoTCP, unix.IPPROTO_TCP},
		{ProtoUDP, unix.IPPROTO_UDP},
		{ProtoIPv6, unix.IPPROTO_IPV6},
		{ProtoGRE, unix.IPPROTO_GRE},
		{ProtoESP, unix.IPPROTO_ESP},
		{ProtoAH, unix.IPPROTO_AH},
	}

	for _, tt := range tests {
		if int(tt.proto) != tt.want {
			t.Errorf("%s = %d, want %d", tt.proto, tt.proto, tt.want)
		}
	}
}

func TestFamilyString(t *testing.T) {
	if got := FamilyInet6.String(); got != "inet6" {
		t.Errorf("FamilyInet6.String() = %q, want %q", got, "inet6")
	}
	if got := Family(99).String(); got != "unknown" {
		t.Errorf("Family(99).String() = %q, want %q", got, "unknown")
	}
}
