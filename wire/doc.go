// Package wire defines byte-exact, fixed-size mirrors of the Linux sockaddr
// records for the IPv4, IPv6, and Unix domains. The records exist only for
// 1:1 copies across the syscall boundary; nothing outside the sys package
// should need them.
//
// All host-to-network byte-order conversion happens here and nowhere else:
// ports and the IPv4 address field are stored big-endian, and IPv6 addresses
// are spilled most-significant byte first into their 16-byte field.
package wire
