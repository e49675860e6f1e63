package atom

import (
	"bytes"
	"fmt"

	"github.com/simonhull/mp4meta/internal/data"
)

// ContentKind says what an atom template expects inside the atom.
//
// The kind is fixed when the template is built; parsing only fills in the
// payload that belongs to it.
type ContentKind uint8

const (
	// ContentEmpty expects nothing; any body is discarded.
	ContentEmpty ContentKind = iota
	// ContentRawData expects a headerless payload decoded as Content.RawKind.
	ContentRawData
	// ContentTypedData expects the body of a data atom (type, locale, value).
	ContentTypedData
	// ContentAtoms expects a sequence of child atoms.
	ContentAtoms
)

// String returns the name of the content kind.
func (k ContentKind) String() string {
	switch k {
	case ContentEmpty:
		return "empty"
	case ContentRawData:
		return "raw data"
	case ContentTypedData:
		return "typed data"
	case ContentAtoms:
		return "atoms"
	default:
		return fmt.Sprintf("content(%d)", uint8(k))
	}
}

// Content is the payload of an atom.
type Content struct {
	Kind ContentKind

	// RawKind is how a ContentRawData payload is decoded.
	RawKind data.Kind

	// Data holds the decoded payload of ContentRawData and ContentTypedData.
	// nil means no value.
	Data *data.Value

	// Atoms holds child templates of ContentAtoms, in match priority order.
	Atoms []*Atom
}

// Atom is a node of the atom tree.
type Atom struct {
	Ident Ident

	// Offset is the number of bytes between the 8 byte header and the
	// content, such as the version/flags field of meta.
	Offset int

	Content Content

	// Found is set when the parser matched this atom in the stream.
	Found bool
}

// New creates an atom with the given content.
func New(ident Ident, offset int, content Content) *Atom {
	return &Atom{Ident: ident, Offset: offset, Content: content}
}

// NewContainer creates an atom whose content is the given children.
func NewContainer(f Fourcc, offset int, children ...*Atom) *Atom {
	return New(FourccIdent(f), offset, Content{Kind: ContentAtoms, Atoms: children})
}

// NewRawData creates an atom whose body is decoded directly as kind.
func NewRawData(f Fourcc, offset int, kind data.Kind) *Atom {
	return New(FourccIdent(f), offset, Content{Kind: ContentRawData, RawKind: kind})
}

// NewDataAtom creates an empty data atom template.
func NewDataAtom() *Atom {
	return New(FourccIdent(Data), 0, Content{Kind: ContentTypedData})
}

// NewDataAtomWith creates a data atom holding v.
func NewDataAtomWith(v data.Value) *Atom {
	a := NewDataAtom()
	a.Content.Data = &v
	return a
}

// NewItem creates the template of one ilst item.
//
// A fourcc item wraps a single data atom. A freeform item wraps mean, name
// and data atoms; mean and name are preset from the ident so that the item
// can be written without being parsed first.
func NewItem(ident Ident) *Atom {
	if !ident.IsFreeform() {
		return New(ident, 0, Content{Kind: ContentAtoms, Atoms: []*Atom{NewDataAtom()}})
	}

	mean := NewRawData(Mean, 4, data.KindUTF8)
	meanValue := data.UTF8(ident.Mean())
	mean.Content.Data = &meanValue

	name := NewRawData(Name, 4, data.KindUTF8)
	nameValue := data.UTF8(ident.Name())
	name.Content.Data = &nameValue

	return New(ident, 0, Content{Kind: ContentAtoms, Atoms: []*Atom{mean, name, NewDataAtom()}})
}

// Head returns the fourcc written in the atom header.
func (a *Atom) Head() Fourcc {
	return a.Ident.Fourcc()
}

// Children returns the child atoms, or nil if a is not a container.
func (a *Atom) Children() []*Atom {
	if a.Content.Kind != ContentAtoms {
		return nil
	}
	return a.Content.Atoms
}

// FirstChild returns the first child atom, or nil.
func (a *Atom) FirstChild() *Atom {
	children := a.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Child returns the first child with the given ident, or nil.
func (a *Atom) Child(i Ident) *Atom {
	for _, c := range a.Children() {
		if c.Ident == i {
			return c
		}
	}
	return nil
}

// ChildPath follows a path of fourcc children, returning nil if any step is
// missing.
func (a *Atom) ChildPath(path ...Fourcc) *Atom {
	cur := a
	for _, f := range path {
		cur = cur.Child(FourccIdent(f))
		if cur == nil {
			return nil
		}
	}
	return cur
}

// AddChild appends c to the children of a container atom.
func (a *Atom) AddChild(c *Atom) {
	if a.Content.Kind != ContentAtoms {
		a.Content = Content{Kind: ContentAtoms}
	}
	a.Content.Atoms = append(a.Content.Atoms, c)
}

// Value returns the data value held by a data or raw data atom.
func (a *Atom) Value() (data.Value, bool) {
	if a.Content.Data == nil {
		return data.Value{}, false
	}
	return *a.Content.Data, true
}

// SetValue stores v as the payload of a data or raw data atom.
func (a *Atom) SetValue(v data.Value) {
	a.Content.Data = &v
}

// Present reports whether the atom belongs in the output: it was found in
// the stream or carries a payload.
//
// A freeform item counts as present only through its data child, since its
// mean and name children are preset from the ident.
func (a *Atom) Present() bool {
	if a.Found {
		return true
	}
	switch a.Content.Kind {
	case ContentRawData, ContentTypedData:
		return a.Content.Data != nil
	case ContentAtoms:
		if a.Ident.IsFreeform() {
			d := a.Child(FourccIdent(Data))
			return d != nil && d.Present()
		}
		for _, c := range a.Content.Atoms {
			if c.Present() {
				return true
			}
		}
	}
	return false
}

// Reset clears all parsed state and payloads below a, leaving the template
// shape. Preset mean and name values of freeform items are kept.
func (a *Atom) Reset() {
	a.Found = false
	switch a.Content.Kind {
	case ContentRawData:
		if a.Head() != Mean && a.Head() != Name {
			a.Content.Data = nil
		}
	case ContentTypedData:
		a.Content.Data = nil
	case ContentAtoms:
		for _, c := range a.Content.Atoms {
			c.Reset()
		}
	}
}

// Clone returns a deep copy of a.
func (a *Atom) Clone() *Atom {
	if a == nil {
		return nil
	}
	c := *a
	if a.Content.Data != nil {
		v := *a.Content.Data
		v.Bytes = bytes.Clone(v.Bytes)
		c.Content.Data = &v
	}
	if a.Content.Atoms != nil {
		c.Content.Atoms = make([]*Atom, len(a.Content.Atoms))
		for i, child := range a.Content.Atoms {
			c.Content.Atoms[i] = child.Clone()
		}
	}
	return &c
}

// String returns a one line description for debugging.
func (a *Atom) String() string {
	switch a.Content.Kind {
	case ContentAtoms:
		return fmt.Sprintf("Atom{%s, %d: %d atoms}", a.Ident, a.Offset, len(a.Content.Atoms))
	case ContentRawData, ContentTypedData:
		if a.Content.Data != nil {
			return fmt.Sprintf("Atom{%s, %d: %s}", a.Ident, a.Offset, a.Content.Data)
		}
	}
	return fmt.Sprintf("Atom{%s, %d: %s}", a.Ident, a.Offset, a.Content.Kind)
}
