// Package atom implements the MPEG-4 atom tree engine.
//
// An Atom tree built with the constructors in this package is both the
// template that drives a parse and, afterwards, the result: the parser walks
// the stream, descends only into atoms the template names, skips everything
// else and fills in the payloads of the atoms it matched.
package atom

import (
	"strings"
	"unicode/utf8"

	"github.com/simonhull/mp4meta/internal/types"
)

// Fourcc is a 4 byte atom identifier.
//
// Bytes are case significant and may be outside ASCII: iTunes prefixes its
// oldest item identifiers with 0xA9, which renders as ©.
type Fourcc [4]byte

// ParseFourcc builds a Fourcc from a string.
//
// s must encode to exactly four bytes. Runes up to U+00FF count as a single
// byte, so "©nam" yields {0xA9, 'n', 'a', 'm'}. A string that is not valid
// UTF-8 is taken as raw bytes, so "\xA9nam" yields the same fourcc.
func ParseFourcc(s string) (Fourcc, error) {
	var f Fourcc
	if !utf8.ValidString(s) {
		if len(s) != 4 {
			return Fourcc{}, &types.InvalidIdentLengthError{Value: s, Length: len(s)}
		}
		copy(f[:], s)
		return f, nil
	}

	n := 0
	for _, r := range s {
		if r > 0xFF || n >= 4 {
			return Fourcc{}, &types.InvalidIdentLengthError{Value: s, Length: latin1Len(s)}
		}
		f[n] = byte(r)
		n++
	}
	if n != 4 {
		return Fourcc{}, &types.InvalidIdentLengthError{Value: s, Length: latin1Len(s)}
	}
	return f, nil
}

// latin1Len returns the byte length of s in the one byte per rune encoding
// used for fourcc text, counting wider runes by their UTF-8 length.
func latin1Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFF {
			n += len(string(r))
			continue
		}
		n++
	}
	return n
}

// String renders each byte as the rune of the same value.
func (f Fourcc) String() string {
	var sb strings.Builder
	for _, b := range f {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

type identKind uint8

const (
	kindFourcc identKind = iota
	kindFreeform
)

// Ident identifies an atom: either a plain fourcc or a freeform (----) atom
// named by a mean and name string pair.
//
// Ident is a comparable value. Two idents are equal iff they are the same
// variant with the same payload; a fourcc ident never equals a freeform one,
// even FourccIdent(Freeform).
type Ident struct {
	kind   identKind
	fourcc Fourcc
	mean   string
	name   string
}

// FourccIdent returns the ident of a plain atom.
func FourccIdent(f Fourcc) Ident {
	return Ident{kind: kindFourcc, fourcc: f}
}

// FreeformIdent returns the ident of a freeform atom.
func FreeformIdent(mean, name string) Ident {
	return Ident{kind: kindFreeform, fourcc: Freeform, mean: mean, name: name}
}

// ParseIdent parses either a fourcc or the "----:mean:name" form.
func ParseIdent(s string) (Ident, error) {
	if rest, ok := strings.CutPrefix(s, "----:"); ok {
		mean, name, found := strings.Cut(rest, ":")
		if found {
			return FreeformIdent(mean, name), nil
		}
	}
	f, err := ParseFourcc(s)
	if err != nil {
		return Ident{}, err
	}
	return FourccIdent(f), nil
}

// IsFreeform reports whether i names a freeform atom.
func (i Ident) IsFreeform() bool {
	return i.kind == kindFreeform
}

// Fourcc returns the structural head written in the stream: the fourcc
// itself, or ---- for a freeform ident.
func (i Ident) Fourcc() Fourcc {
	return i.fourcc
}

// Mean returns the mean string of a freeform ident.
func (i Ident) Mean() string {
	return i.mean
}

// Name returns the name string of a freeform ident.
func (i Ident) Name() string {
	return i.name
}

// Equal reports whether i and other identify the same atom.
func (i Ident) Equal(other Ident) bool {
	return i == other
}

// String returns the fourcc text or "----:mean:name".
func (i Ident) String() string {
	if i.kind == kindFreeform {
		return "----:" + i.mean + ":" + i.name
	}
	return i.fourcc.String()
}
