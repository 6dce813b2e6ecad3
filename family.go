package rawsock

// Family is a socket address family (domain). The numeric values match the
// Linux AF_* constants and are written verbatim into wire records.
type Family uint16

const (
	FamilyUnspec Family = 0
	FamilyUnix   Family = 1
	FamilyInet4  Family = 2
	FamilyInet6  Family = 10
)

var familyNames = map[Family]string{
	FamilyUnspec: "unspec",
	FamilyUnix:   "unix",
	FamilyInet4:  "inet4",
	FamilyInet6:  "inet6",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// Type is a socket type. The numeric values match the Linux SOCK_* constants.
type Type int

const (
	Stream    Type = 1
	Datagram  Type = 2
	Raw       Type = 3
	SeqPacket Type = 5
	Packet    Type = 10
)

var typeNames = map[Type]string{
	Stream:    "stream",
	Datagram:  "datagram",
	Raw:       "raw",
	SeqPacket: "seqpacket",
	Packet:    "packet",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Protocol is an IP protocol number. ProtoIP (zero) lets the kernel pick the
// protocol appropriate for the socket type.
type Protocol int

const (
	ProtoIP   Protocol = 0
	ProtoICMP Protocol = 1
	ProtoIGMP Protocol = 2
	ProtoIPIP Protocol = 4
	ProtoTCP  Protocol = 6
	ProtoUDP  Protocol = 17
	ProtoIPv6 Protocol = 41
	ProtoGRE  Protocol = 47
	ProtoESP  Protocol = 50
	ProtoAH   Protocol = 51
)

var protocolNames = map[Protocol]string{
	ProtoIP:   "ip",
	ProtoICMP: "icmp",
	ProtoIGMP: "igmp",
	ProtoIPIP: "ipip",
	ProtoTCP:  "tcp",
	ProtoUDP:  "udp",
	ProtoIPv6: "ipv6",
	ProtoGRE:  "gre",
	ProtoESP:  "esp",
	ProtoAH:   "ah",
}

func (p Protocol) String() string {
	if name, ok := protocolNames[p]; ok {
		return name
	}
	return "unknown"
}
