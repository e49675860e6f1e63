package m4a

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audiobinary "github.com/simonhull/mp4meta/internal/binary"
	"github.com/simonhull/mp4meta/internal/types"
)

// createMockAtom creates a test atom with given type and data.
func createMockAtom(atomType string, data ...[]byte) []byte {
	body := bytes.Join(data, nil)
	buf := &bytes.Buffer{}

	// Write size (8 byte header + data length)
	_ = binary.Write(buf, binary.BigEndian, uint32(8+len(body)))
	buf.WriteString(atomType)
	buf.Write(body)

	return buf.Bytes()
}

func safeReader(b []byte) *audiobinary.SafeReader {
	return audiobinary.NewSafeReader(bytes.NewReader(b), int64(len(b)), "test.m4a")
}

func TestReadAtomHeader_Success(t *testing.T) {
	data := createMockAtom("moov", []byte{0x01, 0x02, 0x03, 0x04})

	h, err := readAtomHeader(safeReader(data), 0)
	require.NoError(t, err)

	assert.Equal(t, uint64(12), h.Size)
	assert.Equal(t, "moov", h.Type)
	assert.Equal(t, int64(0), h.Offset)
	assert.Equal(t, int64(4), h.DataSize())
	assert.Equal(t, int64(8), h.DataOffset())
	assert.Equal(t, int64(12), h.End())
	assert.True(t, h.IsContainer())
}

func TestReadAtomHeader_Extended(t *testing.T) {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, uint32(1))
	buf.WriteString("mdat")
	_ = binary.Write(buf, binary.BigEndian, uint64(24))
	buf.Write(make([]byte, 8))

	h, err := readAtomHeader(safeReader(buf.Bytes()), 0)
	require.NoError(t, err)

	assert.True(t, h.Extended)
	assert.Equal(t, uint64(24), h.Size)
	assert.Equal(t, int64(16), h.DataOffset())
	assert.Equal(t, int64(8), h.DataSize())
	assert.False(t, h.IsContainer())
}

func TestReadAtomHeader_InvalidSize(t *testing.T) {
	data := []byte{0, 0, 0, 4, 'f', 'r', 'e', 'e'}

	_, err := readAtomHeader(safeReader(data), 0)
	var corrupt *types.CorruptedFileError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, "test.m4a", corrupt.Path)
}

func TestReadAtomHeader_PastEnd(t *testing.T) {
	data := createMockAtom("moov", make([]byte, 32))[:16]

	_, err := readAtomHeader(safeReader(data), 0)
	assert.ErrorIs(t, err, types.ErrBoundsExceeded)
}

func TestReadAtomHeader_Truncated(t *testing.T) {
	_, err := readAtomHeader(safeReader([]byte{0, 0, 0}), 0)
	var oob *types.OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, "atom size", oob.What)
}

func TestFindAtom(t *testing.T) {
	data := bytes.Join([][]byte{
		createMockAtom("ftyp", []byte("M4A ")),
		createMockAtom("free"),
		createMockAtom("moov", createMockAtom("udta")),
	}, nil)
	sr := safeReader(data)

	h, err := findAtom(sr, 0, int64(len(data)), "moov")
	require.NoError(t, err)
	assert.Equal(t, int64(20), h.Offset)

	udta, err := findAtom(sr, h.DataOffset(), h.End(), "udta")
	require.NoError(t, err)
	assert.Equal(t, int64(28), udta.Offset)

	_, err = findAtom(sr, 0, int64(len(data)), "mdat")
	var notFound *types.AtomNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "mdat", notFound.Ident)
}

func TestChildren_TrailingPadding(t *testing.T) {
	udta := createMockAtom("udta", createMockAtom("free"), make([]byte, 4))
	sr := safeReader(udta)

	hs, err := children(sr, 8, int64(len(udta)))
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, "free", hs[0].Type)

	_, err = findAtom(sr, 8, int64(len(udta)), "meta")
	assert.ErrorIs(t, err, types.ErrAtomNotFound)
}

func TestFindAtom_ChildPastParent(t *testing.T) {
	// The udta header claims more than the moov body holds.
	udta := []byte{0, 0, 0, 64, 'u', 'd', 't', 'a'}
	data := append(createMockAtom("moov", udta), make([]byte, 64)...)
	sr := safeReader(data)

	moov, err := readAtomHeader(sr, 0)
	require.NoError(t, err)
	_, err = findAtom(sr, moov.DataOffset(), moov.End(), "udta")
	assert.ErrorIs(t, err, types.ErrBoundsExceeded)
}

func TestWalk(t *testing.T) {
	data := bytes.Join([][]byte{
		createMockAtom("ftyp", []byte("M4A ")),
		createMockAtom("moov",
			createMockAtom("udta",
				createMockAtom("meta", []byte{0, 0, 0, 0},
					createMockAtom("ilst",
						createMockAtom("\xa9nam", createMockAtom("data", make([]byte, 9))),
					),
				),
			),
		),
	}, nil)

	var got []string
	err := Walk(safeReader(data), 0, int64(len(data)), func(n Node) error {
		got = append(got, string(rune('0'+n.Depth))+n.Type)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0ftyp", "0moov", "1udta", "2meta", "3ilst", "4\xa9nam", "5data"}, got)
}
