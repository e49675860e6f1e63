package binary

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainReader hides any Seeker implementation of the wrapped reader.
type plainReader struct {
	r io.Reader
}

func (p plainReader) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

func TestStream_SizeFromSeeker(t *testing.T) {
	data := []byte("0123456789")
	r := bytes.NewReader(data)
	_, err := r.Seek(3, io.SeekStart)
	require.NoError(t, err)

	s := NewStream(r, -1, "test.m4a")
	assert.Equal(t, int64(7), s.Remaining())

	// The seeker must be left where it was.
	b := make([]byte, 1)
	require.NoError(t, s.ReadFull(b))
	assert.Equal(t, byte('3'), b[0])
}

func TestStream_UnknownSize(t *testing.T) {
	s := NewStream(plainReader{bytes.NewReader([]byte("abcdef"))}, -1, "")
	assert.Equal(t, int64(-1), s.Remaining())

	require.NoError(t, s.Skip(2))
	got, err := s.ReadN(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("cde"), got)
	assert.Equal(t, int64(5), s.Offset())

	_, err = s.ReadN(4)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestStream_SkipExact(t *testing.T) {
	tests := []struct {
		name string
		r    io.Reader
	}{
		{"seeker", bytes.NewReader(make([]byte, 100))},
		{"plain", plainReader{bytes.NewReader(make([]byte, 100))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(tt.r, 100, "")
			require.NoError(t, s.Skip(40))
			require.NoError(t, s.Skip(0))
			assert.Equal(t, int64(40), s.Offset())
			assert.Equal(t, int64(60), s.Remaining())
		})
	}
}

func TestStream_SkipBeyondKnownSize(t *testing.T) {
	s := NewStream(bytes.NewReader(make([]byte, 10)), 10, "")

	err := s.Skip(11)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, int64(0), s.Offset(), "a rejected skip must not consume anything")
}

func TestStream_ReadFullEOF(t *testing.T) {
	s := NewStream(plainReader{bytes.NewReader([]byte{1, 2})}, -1, "")

	err := s.ReadFull(make([]byte, 4))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = s.ReadFull(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
}

func TestNext(t *testing.T) {
	s := NewStream(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x10, 0xA9, 0x01, 0x02}), -1, "")

	u32, err := Next[uint32](s)
	require.NoError(t, err)
	assert.Equal(t, uint32(16), u32)

	u8, err := Next[uint8](s)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xA9), u8)

	u16, err := Next[uint16](s)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)

	_, err = Next[uint8](s)
	assert.ErrorIs(t, err, io.EOF)
}
