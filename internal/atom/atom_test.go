package atom

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/mp4meta/internal/data"
	"github.com/simonhull/mp4meta/internal/types"
)

// box builds an atom with the given raw fourcc and body parts.
func box(fourcc string, body ...[]byte) []byte {
	if len(fourcc) != 4 {
		panic("fourcc must be 4 bytes: " + fourcc)
	}
	content := bytes.Join(body, nil)
	out := make([]byte, 8, 8+len(content))
	binary.BigEndian.PutUint32(out, uint32(8+len(content)))
	copy(out[4:], fourcc)
	return append(out, content...)
}

// fullBox builds an atom whose body starts with 4 version/flags bytes.
func fullBox(fourcc string, body ...[]byte) []byte {
	return box(fourcc, append([][]byte{{0, 0, 0, 0}}, body...)...)
}

// dataBox builds a data atom with the given type indicator and value.
func dataBox(typ uint32, value []byte) []byte {
	head := make([]byte, 8)
	binary.BigEndian.PutUint32(head, typ)
	return box("data", head, value)
}

func textItem(fourcc, text string) []byte {
	return box(fourcc, dataBox(data.TypeUTF8, []byte(text)))
}

func freeformItem(mean, name, text string) []byte {
	return box("----",
		fullBox("mean", []byte(mean)),
		fullBox("name", []byte(name)),
		dataBox(data.TypeUTF8, []byte(text)),
	)
}

func ftypBox(brand string) []byte {
	return box("ftyp", []byte(brand), []byte{0, 0, 0, 0}, []byte(brand), []byte("mp42isom"))
}

func hdlrBox() []byte {
	return fullBox("hdlr", []byte{0, 0, 0, 0}, []byte("mdir"), []byte("appl"), make([]byte, 9))
}

// moovWith wraps ilst items in moov > udta > meta > ilst.
func moovWith(items ...[]byte) []byte {
	return box("moov",
		box("mvhd", make([]byte, 100)),
		box("udta", fullBox("meta", hdlrBox(), box("ilst", items...))),
	)
}

func m4aFile(items ...[]byte) []byte {
	return bytes.Join([][]byte{
		ftypBox("M4A "),
		box("free", make([]byte, 16)),
		moovWith(items...),
		box("mdat", make([]byte, 64)),
	}, nil)
}

func TestParseFourcc(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Fourcc
		wantErr bool
	}{
		{"ascii", "moov", Movie, false},
		{"copyright sign", "©nam", Title, false},
		{"raw byte", "\xa9ART", Artist, false},
		{"freeform", "----", Freeform, false},
		{"too short", "abc", Fourcc{}, true},
		{"too long", "abcde", Fourcc{}, true},
		{"wide rune", "ab日c", Fourcc{}, true},
		{"empty", "", Fourcc{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFourcc(tt.input)
			if tt.wantErr {
				var lenErr *types.InvalidIdentLengthError
				require.ErrorAs(t, err, &lenErr)
				assert.Equal(t, tt.input, lenErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFourccString(t *testing.T) {
	assert.Equal(t, "©nam", Title.String())
	assert.Equal(t, "ilst", ItemList.String())
}

func TestIdent(t *testing.T) {
	t.Run("freeform parse", func(t *testing.T) {
		got, err := ParseIdent("----:com.apple.iTunes:ISRC")
		require.NoError(t, err)
		assert.True(t, got.IsFreeform())
		assert.True(t, got.Equal(ISRC))
		assert.Equal(t, Freeform, got.Fourcc())
		assert.Equal(t, AppleITunesMean, got.Mean())
		assert.Equal(t, "ISRC", got.Name())
		assert.Equal(t, "----:com.apple.iTunes:ISRC", got.String())
	})

	t.Run("fourcc parse", func(t *testing.T) {
		got, err := ParseIdent("©alb")
		require.NoError(t, err)
		assert.False(t, got.IsFreeform())
		assert.Equal(t, FourccIdent(Album), got)
	})

	t.Run("variants never equal", func(t *testing.T) {
		assert.NotEqual(t, FourccIdent(Freeform), FreeformIdent("", ""))
		assert.NotEqual(t, FreeformIdent("a", "b"), FreeformIdent("a", "c"))
		assert.Equal(t, FreeformIdent("a", "b"), FreeformIdent("a", "b"))
	})

	t.Run("usable as map key", func(t *testing.T) {
		m := map[Ident]int{ISRC: 1, FourccIdent(Title): 2}
		assert.Equal(t, 1, m[FreeformIdent(AppleITunesMean, "ISRC")])
		assert.Equal(t, 2, m[FourccIdent(Title)])
	})
}

func TestFriendlyName(t *testing.T) {
	name, ok := FriendlyName(FourccIdent(AlbumArtist))
	require.True(t, ok)
	assert.Equal(t, "Album Artist", name)

	ident, ok := IdentByFriendlyName("Isrc")
	require.True(t, ok)
	assert.Equal(t, ISRC, ident)

	_, ok = FriendlyName(FourccIdent(Fourcc{'z', 'z', 'z', 'z'}))
	assert.False(t, ok)
}

func TestNewItem(t *testing.T) {
	item := NewItem(FourccIdent(Title))
	require.Len(t, item.Children(), 1)
	assert.Equal(t, ContentTypedData, item.FirstChild().Content.Kind)
	assert.False(t, item.Present())

	ff := NewItem(ISRC)
	require.Len(t, ff.Children(), 3)
	mean, ok := ff.Child(FourccIdent(Mean)).Value()
	require.True(t, ok)
	assert.Equal(t, AppleITunesMean, mean.Text)
	assert.Equal(t, 4, ff.Child(FourccIdent(Name)).Offset)
	assert.False(t, ff.Present(), "preset mean and name do not make an item present")

	ff.Child(FourccIdent(Data)).SetValue(data.UTF8("USRC17607839"))
	assert.True(t, ff.Present())
}

func TestClone(t *testing.T) {
	orig := NewItem(FourccIdent(Artwork))
	orig.FirstChild().SetValue(data.JPEG([]byte{0xFF, 0xD8}))
	orig.Found = true

	c := orig.Clone()
	require.NotSame(t, orig.FirstChild(), c.FirstChild())
	c.FirstChild().Content.Data.Bytes[0] = 0
	c.FirstChild().SetValue(data.PNG(nil))

	v, _ := orig.FirstChild().Value()
	assert.Equal(t, data.KindJPEG, v.Kind)
	assert.Equal(t, byte(0xFF), v.Bytes[0])
	assert.True(t, c.Found)
}

func TestReset(t *testing.T) {
	moov := MetadataTemplate()
	ilst := ItemListOf(moov)
	require.NotNil(t, ilst)

	title := ilst.Child(FourccIdent(Title))
	title.FirstChild().SetValue(data.UTF8("x"))
	isrc := ilst.Child(ISRC)
	isrc.Child(FourccIdent(Data)).SetValue(data.UTF8("y"))
	require.True(t, moov.Present())

	moov.Reset()
	assert.False(t, moov.Present())
	_, ok := isrc.Child(FourccIdent(Mean)).Value()
	assert.True(t, ok, "freeform mean survives reset")
}

func TestChildPath(t *testing.T) {
	moov := MetadataTemplate()
	assert.NotNil(t, moov.ChildPath(UserData, Metadata))
	assert.Equal(t, 4, moov.ChildPath(UserData, Metadata).Offset)
	assert.Nil(t, moov.ChildPath(UserData, Track))
	assert.Nil(t, NewDataAtom().ChildPath(Data))
}
