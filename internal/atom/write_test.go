package atom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/mp4meta/internal/data"
)

func TestEncode_DataAtom(t *testing.T) {
	got, err := Encode(NewDataAtomWith(data.UTF8("hi")))
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0, 0, 0, 18, 'd', 'a', 't', 'a',
		0, 0, 0, 1, 0, 0, 0, 0,
		'h', 'i',
	}, got)
}

func TestEncode_OffsetZeros(t *testing.T) {
	meta := NewContainer(Metadata, 4, NewContainer(ItemList, 0))
	meta.Found = true
	meta.FirstChild().Found = true

	got, err := Encode(meta)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0, 0, 0, 20, 'm', 'e', 't', 'a',
		0, 0, 0, 0,
		0, 0, 0, 8, 'i', 'l', 's', 't',
	}, got)
}

func TestEncode_OmitsAbsentChildren(t *testing.T) {
	title := NewItem(FourccIdent(Title))
	title.FirstChild().SetValue(data.UTF8("Song"))
	ilst := NewContainer(ItemList, 0,
		NewItem(FourccIdent(Album)),
		title,
		NewItem(ISRC),
	)

	got, err := Encode(ilst)
	require.NoError(t, err)
	assert.Equal(t, box("ilst", textItem("\xa9nam", "Song")), got)
}

func TestEncode_AbsentRoot(t *testing.T) {
	// The root is written even when it has no payload.
	got, err := Encode(NewContainer(ItemList, 0, NewItem(FourccIdent(Title))))
	require.NoError(t, err)
	assert.Equal(t, box("ilst"), got)
}

func TestEncode_FreeformOrder(t *testing.T) {
	item := NewItem(ISRC)
	item.Child(FourccIdent(Data)).SetValue(data.UTF8("USRC17607839"))
	// Reverse the children; the output order is fixed.
	c := item.Content.Atoms
	c[0], c[2] = c[2], c[0]

	got, err := Encode(item)
	require.NoError(t, err)
	assert.Equal(t, freeformItem(AppleITunesMean, "ISRC", "USRC17607839"), got)
}

func TestEncode_FoundButEmpty(t *testing.T) {
	d := NewDataAtom()
	d.Found = true
	item := NewItem(FourccIdent(Title))
	item.Content.Atoms = []*Atom{d}

	got, err := Encode(item)
	require.NoError(t, err)
	assert.Equal(t, box("\xa9nam", box("data")), got)
}

func TestEncode_EncodeError(t *testing.T) {
	item := NewItem(FourccIdent(BPM))
	item.FirstChild().SetValue(data.Int(70000, 2))

	_, err := Encode(item)
	var encErr *data.EncodeError
	require.ErrorAs(t, err, &encErr)
}

func TestRoundTrip(t *testing.T) {
	moov := box("moov",
		box("udta",
			fullBox("meta",
				box("ilst",
					textItem("\xa9ART", "Artist"),
					textItem("\xa9nam", "Title"),
					box("tmpo", dataBox(data.TypeBESigned, []byte{0, 120})),
					box("covr", dataBox(data.TypePNG, []byte{0x89, 'P', 'N', 'G'})),
					box("????", dataBox(200, []byte("opaque"))),
					freeformItem(AppleITunesMean, "ISRC", "USRC17607839"),
				),
			),
		),
	)

	template := func() *Atom {
		return NewContainer(Movie, 0,
			NewContainer(UserData, 0,
				NewContainer(Metadata, 4,
					NewContainer(ItemList, 0,
						NewItem(FourccIdent(Artist)),
						NewItem(FourccIdent(Title)),
						NewItem(FourccIdent(BPM)),
						NewItem(FourccIdent(Artwork)),
						NewItem(FourccIdent(Fourcc{'?', '?', '?', '?'})),
						NewItem(ISRC),
					),
				),
			),
		)
	}

	tpl := template()
	require.NoError(t, newParser(moov, WithLogger(quietLogger())).Parse(tpl))

	got, err := Encode(tpl)
	require.NoError(t, err)
	assert.Equal(t, moov, got)

	// Parsing the encoding again yields the same values.
	again := template()
	require.NoError(t, newParser(got, WithLogger(quietLogger())).Parse(again))
	a := ItemListOf(tpl).Children()
	b := ItemListOf(again).Children()
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Ident, b[i].Ident)
		av, aok := a[i].Child(FourccIdent(Data)).Value()
		bv, bok := b[i].Child(FourccIdent(Data)).Value()
		assert.Equal(t, aok, bok)
		assert.Equal(t, av, bv)
	}
}

func TestRoundTrip_BuiltTree(t *testing.T) {
	moov := MetadataTemplate()
	ilst := ItemListOf(moov)
	ilst.Child(FourccIdent(Title)).FirstChild().SetValue(data.UTF8("Built"))
	ilst.Child(FourccIdent(Compilation)).FirstChild().SetValue(data.Bool(true))
	ilst.Child(Lyricist).Child(FourccIdent(Data)).SetValue(data.UTF8("Writer"))

	encoded, err := Encode(moov)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, moov))
	assert.Equal(t, encoded, buf.Bytes())

	parsed := MetadataTemplate()
	require.NoError(t, newParser(encoded, WithLogger(quietLogger())).Parse(parsed))
	pl := ItemListOf(parsed)

	assert.Equal(t, "Built", textOf(t, pl.Child(FourccIdent(Title)).FirstChild()))
	assert.Equal(t, "Writer", textOf(t, pl.Child(Lyricist).Child(FourccIdent(Data))))
	cpil, ok := pl.Child(FourccIdent(Compilation)).FirstChild().Value()
	require.True(t, ok)
	assert.Equal(t, int64(1), cpil.Int)
	assert.False(t, pl.Child(FourccIdent(Album)).Found)
}
