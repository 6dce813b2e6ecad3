package rawsock

import (
	"strconv"
	"strings"
)

// OctetError reports the 0-based index of the dotted-quad segment that
// failed to parse.
type OctetError struct {
	Index int
}

func (e *OctetError) Error() string {
	return "rawsock: invalid octet at index " + strconv.Itoa(e.Index)
}

// ParseInet4 converts a textual IPv4 address into a 32-bit host-order
// integer.
//
// Up to four dot-separated segments are consumed left to right; each must be
// an unsigned integer no greater than 255. A segment that fails either check
// yields an *OctetError identifying its index. Fewer than four segments is
// valid: unspecified trailing octets are zero, so "127.64" parses to
// 0x7f400000. Segments beyond the fourth are ignored.
//
// The result is host order. Callers placing it on the wire must convert to
// network order (the wire package does this for BindTargets).
func ParseInet4(addr string) (uint32, error) {
	var ret uint32
	segs := strings.Split(addr, ".")
	for i := 0; i < 4; i++ {
		if i >= len(segs) {
			return ret, nil
		}
		v, err := strconv.ParseUint(segs[i], 10, 32)
		if err != nil || v > 255 {
			return 0, &OctetError{Index: i}
		}
		ret |= uint32(v) << (8 * (3 - i))
	}
	return ret, nil
}
