package nlattr

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/sys/unix"
)

// AttrMap holds the payload of each attribute found in a nested block,
// keyed by attribute type. Duplicate types keep the last occurrence.
type AttrMap map[uint16][]byte

// Get returns an attribute payload and its presence.
func (m AttrMap) Get(typ uint16) ([]byte, bool) {
	p, ok := m[typ]
	return p, ok
}

// GetUint extracts an unsigned integer attribute.
// It reports false if the attribute is absent or its payload is shorter than
// the width of T. A longer payload is accepted and read at the front.
func GetUint[T constraints.Unsigned](m AttrMap, typ uint16) (v T, ok bool) {
	p, ok := m[typ]
	if !ok || len(p) < Width[T]() {
		return 0, false
	}
	return Uint[T](p), true
}

// ParseNested parses one outer attribute into the attributes it contains.
// ErrTruncated means the outer attribute header itself is unusable. A
// malformed inner attribute stops the walk without error, and attribute
// types the caller does not recognize are retained in the map; both keep
// older parsers usable against newer producers.
func ParseNested(block []byte) (AttrMap, error) {
	if len(block) < unix.NLA_HDRLEN {
		return nil, ErrTruncated
	}
	length := int(hostEndian.Uint16(block))
	if length < unix.NLA_HDRLEN || length > len(block) {
		return nil, ErrTruncated
	}

	m := AttrMap{}
	rest := block[unix.NLA_HDRLEN:length]
	for len(rest) >= unix.NLA_HDRLEN {
		alen := int(hostEndian.Uint16(rest))
		if alen < unix.NLA_HDRLEN || alen > len(rest) {
			break
		}
		typ := hostEndian.Uint16(rest[2:]) & typeMask
		m[typ] = rest[unix.NLA_HDRLEN:alen]
		if adv := Align(alen); adv < len(rest) {
			rest = rest[adv:]
		} else {
			rest = nil
		}
	}
	return m, nil
}
