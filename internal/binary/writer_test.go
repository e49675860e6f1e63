package binary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWriter_WriteUint32BE(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	require.NoError(t, Write[uint32](sw, 0x12345678))
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, buf.Bytes())
}

func TestSafeWriter_Offset(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	assert.Equal(t, int64(0), sw.Offset())

	require.NoError(t, Write[uint8](sw, 0x01))
	assert.Equal(t, int64(1), sw.Offset())

	require.NoError(t, Write[uint16](sw, 0x0203))
	assert.Equal(t, int64(3), sw.Offset())

	require.NoError(t, Write[uint32](sw, 0x04050607))
	assert.Equal(t, int64(7), sw.Offset())

	require.NoError(t, Write[uint64](sw, 0x08090A0B0C0D0E0F))
	assert.Equal(t, int64(15), sw.Offset())
}

func TestSafeWriter_StringsAndZeros(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	require.NoError(t, sw.WriteString("ilst"))
	require.NoError(t, sw.WriteZeros(4))
	require.NoError(t, sw.WriteZeros(0))
	require.NoError(t, sw.WriteBytes([]byte{0xA9}))

	assert.Equal(t, []byte{'i', 'l', 's', 't', 0, 0, 0, 0, 0xA9}, buf.Bytes())
	assert.Equal(t, int64(9), sw.Offset())
}
