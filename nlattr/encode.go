package nlattr

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/unix"
)

// MessageBuffer accumulates attributes of one request message, up to a fixed
// capacity. If an append overflows the capacity, the error is accumulated in
// the MessageBuffer and surfaces from Err and Output.
type MessageBuffer struct {
	b   []byte
	max int
	err error
}

// NewMessageBuffer creates a MessageBuffer with a capacity limit in octets.
func NewMessageBuffer(max int) *MessageBuffer {
	return &MessageBuffer{max: max}
}

// Len returns the current encoded length.
func (mb *MessageBuffer) Len() int {
	return len(mb.b)
}

// Err returns the accumulated error.
func (mb *MessageBuffer) Err() error {
	return mb.err
}

// Output returns encoding output and accumulated error.
// On error the output is nil; a message is never emitted partially encoded.
func (mb *MessageBuffer) Output() ([]byte, error) {
	if mb.err != nil {
		return nil, mb.err
	}
	return mb.b, nil
}

// Append appends one attribute with an arbitrary payload.
func (mb *MessageBuffer) Append(typ uint16, payload []byte) {
	if mb.err != nil {
		return
	}
	length := unix.NLA_HDRLEN + len(payload)
	if len(mb.b)+Align(length) > mb.max {
		mb.err = fmt.Errorf("attribute %d: %w", typ&typeMask, ErrBufferOverflow)
		return
	}
	mb.b = hostEndian.AppendUint16(mb.b, uint16(length))
	mb.b = hostEndian.AppendUint16(mb.b, typ)
	mb.b = append(mb.b, payload...)
	for len(mb.b)%unix.NLA_ALIGNTO != 0 {
		mb.b = append(mb.b, 0)
	}
}

// AppendUint appends one attribute carrying a host-endian unsigned integer.
func AppendUint[T constraints.Unsigned](mb *MessageBuffer, typ uint16, v T) {
	var payload []byte
	switch Width[T]() {
	case 1:
		payload = []byte{byte(v)}
	case 2:
		payload = hostEndian.AppendUint16(nil, uint16(v))
	case 4:
		payload = hostEndian.AppendUint32(nil, uint32(v))
	default:
		payload = hostEndian.AppendUint64(nil, uint64(v))
	}
	mb.Append(typ, payload)
}

// Nest opens a nested attribute and returns a handle for EndNest.
func (mb *MessageBuffer) Nest(typ uint16) (handle int) {
	handle = len(mb.b)
	mb.Append(typ|unix.NLA_F_NESTED, nil)
	return handle
}

// EndNest closes a nested attribute opened by Nest, back-patching its length
// to cover every attribute appended in between.
func (mb *MessageBuffer) EndNest(handle int) {
	if mb.err != nil {
		return
	}
	hostEndian.PutUint16(mb.b[handle:], uint16(len(mb.b)-handle))
}
