package atom

import (
	"bytes"
	"fmt"
	"io"
	"math"

	bin "github.com/simonhull/mp4meta/internal/binary"
)

// Encode returns the encoding of a and its present children.
func Encode(a *Atom) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the encoding of a to w.
//
// Each atom is written as its 8 byte header, Offset zero bytes and its
// content. Children that are not present are omitted.
func WriteTo(w io.Writer, a *Atom) error {
	sw := bin.NewSafeWriter(w)
	return writeAtom(sw, a)
}

func writeAtom(sw *bin.SafeWriter, a *Atom) error {
	content, err := encodeContent(a)
	if err != nil {
		return err
	}

	length := int64(HeaderSize + a.Offset + len(content))
	if length > math.MaxUint32 {
		return fmt.Errorf("atom %q: length %d does not fit in 32 bits", a.Ident, length)
	}

	head := a.Head()
	if err := bin.Write[uint32](sw, uint32(length)); err != nil {
		return err
	}
	if err := sw.WriteBytes(head[:]); err != nil {
		return err
	}
	if err := sw.WriteZeros(a.Offset); err != nil {
		return err
	}
	return sw.WriteBytes(content)
}

func encodeContent(a *Atom) ([]byte, error) {
	switch a.Content.Kind {
	case ContentAtoms:
		var buf bytes.Buffer
		sw := bin.NewSafeWriter(&buf)
		for _, c := range writeOrder(a) {
			if !c.Present() {
				continue
			}
			if err := writeAtom(sw, c); err != nil {
				return nil, err
			}
		}
		return buf.Bytes(), nil

	case ContentTypedData:
		if a.Content.Data == nil {
			return nil, nil
		}
		b, err := a.Content.Data.EncodeTyped()
		if err != nil {
			return nil, fmt.Errorf("atom %q: %w", a.Ident, err)
		}
		return b, nil

	case ContentRawData:
		if a.Content.Data == nil {
			return nil, nil
		}
		b, err := a.Content.Data.EncodeRaw()
		if err != nil {
			return nil, fmt.Errorf("atom %q: %w", a.Ident, err)
		}
		return b, nil

	default:
		return nil, nil
	}
}

// writeOrder returns the children of a in output order. Freeform atoms put
// mean, name and data first, in that order.
func writeOrder(a *Atom) []*Atom {
	children := a.Content.Atoms
	if !a.Ident.IsFreeform() {
		return children
	}

	ordered := make([]*Atom, 0, len(children))
	for _, f := range []Fourcc{Mean, Name, Data} {
		if c := a.Child(FourccIdent(f)); c != nil {
			ordered = append(ordered, c)
		}
	}
	for _, c := range children {
		switch c.Head() {
		case Mean, Name, Data:
			if c == a.Child(c.Ident) {
				continue
			}
		}
		ordered = append(ordered, c)
	}
	return ordered
}
