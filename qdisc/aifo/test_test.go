package aifo_test

import (
	"encoding/binary"
	"strings"

	"github.com/openschedlab/tcaifo/core/testenv"
	"github.com/openschedlab/tcaifo/nlattr"
	"github.com/openschedlab/tcaifo/qdisc/aifo"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
	codec        aifo.Codec
)

// encode runs the parser over tokens with a tc-sized message buffer.
func encode(tokens ...string) ([]byte, error) {
	msg := nlattr.NewMessageBuffer(1024)
	if e := codec.ParseOptions(tokens, msg); e != nil {
		return nil, e
	}
	return msg.Output()
}

// printOptions renders an options block to a string.
func printOptions(block []byte) (string, error) {
	var sb strings.Builder
	e := codec.PrintOptions(block, &sb)
	return sb.String(), e
}

// rawAttr builds one attribute with explicit payload, padded to alignment.
func rawAttr(typ uint16, payload []byte) []byte {
	ne := binary.NativeEndian
	b := ne.AppendUint16(nil, uint16(4+len(payload)))
	b = ne.AppendUint16(b, typ)
	b = append(b, payload...)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

// rawNested wraps attributes in an outer nested attribute.
func rawNested(typ uint16, inner ...[]byte) []byte {
	var payload []byte
	for _, a := range inner {
		payload = append(payload, a...)
	}
	ne := binary.NativeEndian
	b := ne.AppendUint16(nil, uint16(4+len(payload)))
	b = ne.AppendUint16(b, typ|0x8000)
	return append(b, payload...)
}

func u32Payload(v uint32) []byte {
	return binary.NativeEndian.AppendUint32(nil, v)
}
