package rawsock

// BindTarget is the tagged address specification supplied to bind and
// connect. Exactly one of the three concrete variants is used per call; the
// syscall adapter dispatches on the dynamic type to build the matching wire
// record.
type BindTarget interface {
	// Family returns the address family the target belongs to.
	Family() Family

	bindTarget()
}

// UnixTarget is a Unix-domain socket path. Paths longer than the usable
// 107 bytes are truncated at the wire layer, not rejected; the final byte of
// the 108-byte path buffer is always a NUL terminator.
type UnixTarget struct {
	Path string
}

func (UnixTarget) Family() Family { return FamilyUnix }
func (UnixTarget) bindTarget()    {}

// Inet4Target is an IPv4 endpoint. Both fields are host order; the wire
// layer converts to network order.
type Inet4Target struct {
	Addr uint32
	Port uint16
}

func (Inet4Target) Family() Family { return FamilyInet4 }
func (Inet4Target) bindTarget()    {}

// Inet6Target is an IPv6 endpoint. The 128-bit address is carried as two
// host-order 64-bit halves, Hi holding the most significant bits. The wire
// layer spills it most-significant byte first.
type Inet6Target struct {
	Hi   uint64
	Lo   uint64
	Port uint16
}

func (Inet6Target) Family() Family { return FamilyInet6 }
func (Inet6Target) bindTarget()    {}

// Inet6TargetFromBytes builds an Inet6Target from a 16-byte address in
// network byte order, as produced by address parsers.
func Inet6TargetFromBytes(addr [16]byte, port uint16) Inet6Target {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(addr[i])
		lo = lo<<8 | uint64(addr[i+8])
	}
	return Inet6Target{Hi: hi, Lo: lo, Port: port}
}
