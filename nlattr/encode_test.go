package nlattr_test

import (
	"encoding/binary"
	"testing"

	"github.com/openschedlab/tcaifo/nlattr"
)

func TestAppend(t *testing.T) {
	assert, require := makeAR(t)

	mb := nlattr.NewMessageBuffer(64)
	nlattr.AppendUint(mb, 1, uint32(0xAABBCCDD))
	nlattr.AppendUint(mb, 2, uint16(0x1122))
	wire, e := mb.Output()
	require.NoError(e)
	require.Len(wire, 16)

	ne := binary.NativeEndian
	assert.EqualValues(8, ne.Uint16(wire[0:]))
	assert.EqualValues(1, ne.Uint16(wire[2:]))
	assert.EqualValues(0xAABBCCDD, ne.Uint32(wire[4:]))
	assert.EqualValues(6, ne.Uint16(wire[8:])) // u16 attribute length excludes padding
	assert.EqualValues(2, ne.Uint16(wire[10:]))
	assert.EqualValues(0x1122, ne.Uint16(wire[12:]))
	bytesEqual(assert, bytesFromHex("0000"), wire[14:16])
}

func TestNest(t *testing.T) {
	assert, require := makeAR(t)

	mb := nlattr.NewMessageBuffer(64)
	handle := mb.Nest(2)
	nlattr.AppendUint(mb, 7, uint32(42))
	nlattr.AppendUint(mb, 9, uint16(5))
	mb.EndNest(handle)
	wire, e := mb.Output()
	require.NoError(e)
	require.Len(wire, 20)

	ne := binary.NativeEndian
	assert.EqualValues(20, ne.Uint16(wire[0:]))
	assert.EqualValues(0x8000|2, ne.Uint16(wire[2:]))

	tb, e := nlattr.ParseNested(wire)
	require.NoError(e)
	assert.Len(tb, 2)
	v32, ok := nlattr.GetUint[uint32](tb, 7)
	assert.True(ok)
	assert.EqualValues(42, v32)
	v16, ok := nlattr.GetUint[uint16](tb, 9)
	assert.True(ok)
	assert.EqualValues(5, v16)
}

func TestEmptyNest(t *testing.T) {
	assert, require := makeAR(t)

	mb := nlattr.NewMessageBuffer(64)
	mb.EndNest(mb.Nest(2))
	wire, e := mb.Output()
	require.NoError(e)
	require.Len(wire, 4)

	tb, e := nlattr.ParseNested(wire)
	require.NoError(e)
	assert.Len(tb, 0)
}

func TestOverflow(t *testing.T) {
	assert, _ := makeAR(t)

	mb := nlattr.NewMessageBuffer(12)
	handle := mb.Nest(2)
	nlattr.AppendUint(mb, 1, uint32(1))
	nlattr.AppendUint(mb, 2, uint32(2))
	mb.EndNest(handle)
	assert.ErrorIs(mb.Err(), nlattr.ErrBufferOverflow)

	wire, e := mb.Output()
	assert.Nil(wire)
	assert.ErrorIs(e, nlattr.ErrBufferOverflow)
}
