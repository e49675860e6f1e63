package mp4meta

import (
	"encoding/binary"

	"github.com/simonhull/mp4meta/internal/atom"
	"github.com/simonhull/mp4meta/internal/data"
)

// standardGenres are the ID3v1 genre names with the Winamp extensions. The
// gnre item stores the index plus one.
var standardGenres = [...]string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel", "Noise",
	"AlternRock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic", "Darkwave",
	"Techno-Industrial", "Electronic", "Pop-Folk", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40", "Christian Rap",
	"Pop/Funk", "Jungle", "Native American", "Cabaret", "New Wave",
	"Psychadelic", "Rave", "Showtunes", "Trailer", "Lo-Fi", "Tribal",
	"Acid Punk", "Acid Jazz", "Polka", "Retro", "Musical", "Rock & Roll",
	"Hard Rock", "Folk", "Folk-Rock", "National Folk", "Swing", "Fast Fusion",
	"Bebob", "Latin", "Revival", "Celtic", "Bluegrass", "Avantgarde",
	"Gothic Rock", "Progressive Rock", "Psychedelic Rock", "Symphonic Rock",
	"Slow Rock", "Big Band", "Chorus", "Easy Listening", "Acoustic", "Humour",
	"Speech", "Chanson", "Opera", "Chamber Music", "Sonata", "Symphony",
	"Booty Bass", "Primus", "Porn Groove", "Satire", "Slow Jam", "Club",
	"Tango", "Samba", "Folklore", "Ballad", "Power Ballad", "Rhythmic Soul",
	"Freestyle", "Duet", "Punk Rock", "Drum Solo", "A capella", "Euro-House",
	"Dance Hall",
}

// GenreName returns the name of a standard genre code as stored in gnre.
func GenreName(code uint16) (string, bool) {
	if code == 0 || int(code) > len(standardGenres) {
		return "", false
	}
	return standardGenres[code-1], true
}

// GenreCode returns the gnre code of a standard genre name.
func GenreCode(name string) (uint16, bool) {
	for i, g := range standardGenres {
		if g == name {
			return uint16(i + 1), true
		}
	}
	return 0, false
}

// Genre returns the custom genre (©gen) or, failing that, the name of the
// standard genre (gnre).
func (t *Tag) Genre() (string, bool) {
	if s, ok := t.text(atom.CustomGenre); ok {
		return s, true
	}
	if code, ok := t.StandardGenre(); ok {
		return GenreName(code)
	}
	return "", false
}

// SetGenre stores s as the custom genre and drops the standard genre, so
// readers see a single value. An empty string removes both.
func (t *Tag) SetGenre(s string) {
	t.Remove(atom.FourccIdent(atom.StandardGenre))
	t.setText(atom.CustomGenre, s)
}

// StandardGenre returns the code of the gnre item.
func (t *Tag) StandardGenre() (uint16, bool) {
	v, ok := t.Value(atom.FourccIdent(atom.StandardGenre))
	if !ok {
		return 0, false
	}
	switch v.Kind {
	case data.KindReserved:
		if len(v.Bytes) < 2 {
			return 0, false
		}
		return binary.BigEndian.Uint16(v.Bytes), true
	case data.KindInt, data.KindUint:
		n, _ := v.AsInt()
		if n < 0 || n > 0xFFFF {
			return 0, false
		}
		return uint16(n), true
	default:
		return 0, false
	}
}

// SetStandardGenre stores a standard genre code and drops the custom genre.
func (t *Tag) SetStandardGenre(code uint16) {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, code)
	t.Remove(atom.FourccIdent(atom.CustomGenre))
	t.Set(atom.FourccIdent(atom.StandardGenre), data.Reserved(b))
}
