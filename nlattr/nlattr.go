// Package nlattr implements the netlink attribute encoding used for qdisc
// options: records of {u16 length, u16 type, payload} in host byte order,
// each padded to a 4-octet boundary, grouped inside a nested attribute.
package nlattr

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/unix"
)

// hostEndian encodes multi-octet integers the way the kernel reads them.
var hostEndian = binary.NativeEndian

// typeMask clears the nested and byte-order flag bits from an attribute type.
const typeMask = ^uint16(unix.NLA_F_NESTED | unix.NLA_F_NET_BYTEORDER)

// Align rounds a length up to the attribute alignment boundary.
func Align(n int) int {
	return (n + unix.NLA_ALIGNTO - 1) &^ (unix.NLA_ALIGNTO - 1)
}

// Width returns the encoded width of unsigned integer type T.
func Width[T constraints.Unsigned]() int {
	return int(unsafe.Sizeof(T(0)))
}

// Uint reads a host-endian unsigned integer from the front of a payload.
// The payload must be at least the width of T; extra octets are ignored.
func Uint[T constraints.Unsigned](payload []byte) T {
	switch Width[T]() {
	case 1:
		return T(payload[0])
	case 2:
		return T(hostEndian.Uint16(payload))
	case 4:
		return T(hostEndian.Uint32(payload))
	default:
		return T(hostEndian.Uint64(payload))
	}
}
