package mp4meta

import (
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/simonhull/mp4meta/internal/atom"
)

var dataIdent = atom.FourccIdent(atom.Data)

// Tag is the iTunes metadata of one MPEG-4 file.
//
// Tag exposes the item list by ident (Value, Set, Remove) and through typed
// accessors such as Title and TrackNumber. Changes stay in memory until Save
// or SaveAs is called; only items that were changed are re-encoded, the rest
// of the file is copied unchanged.
type Tag struct {
	// Path of the file the tag was read from, empty for ReadFrom
	Path string

	// Format named by the ftyp brand
	Format Format

	// Brand is the major brand of the ftyp atom, such as "M4A "
	Brand string

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning

	ftyp    *atom.Atom
	moov    *atom.Atom
	ilst    *atom.Atom
	changed map[Ident]bool
	logger  logrus.FieldLogger
}

// NewTag returns an empty M4A tag. It is mainly useful for building the
// item list of a file that has none; Save needs a source file, so use
// Tag.Write to emit it.
func NewTag() *Tag {
	return newTag(&atom.Tree{
		FileType: atom.FileTypeTemplate(),
		Movie:    atom.MetadataTemplate(),
		Format:   FormatM4A,
		Brand:    "M4A ",
	}, "", atom.DiscardLogger())
}

func newTag(tree *atom.Tree, path string, logger logrus.FieldLogger) *Tag {
	return &Tag{
		Path:     path,
		Format:   tree.Format,
		Brand:    tree.Brand,
		Warnings: tree.Warnings,
		ftyp:     tree.FileType,
		moov:     tree.Movie,
		ilst:     atom.ItemListOf(tree.Movie),
		changed:  make(map[Ident]bool),
		logger:   logger,
	}
}

// FileType returns the full ftyp text: major brand, minor version and
// compatible brands.
func (t *Tag) FileType() string {
	v, ok := t.ftyp.Value()
	if !ok {
		return ""
	}
	return v.Text
}

func (t *Tag) dataAtom(id Ident) *atom.Atom {
	item := t.ilst.Child(id)
	if item == nil {
		return nil
	}
	return item.Child(dataIdent)
}

// Value returns the value of the item with the given ident.
//
// An item that exists but whose value was empty, undecodable or too large
// reports false.
func (t *Tag) Value(id Ident) (Value, bool) {
	d := t.dataAtom(id)
	if d == nil {
		return Value{}, false
	}
	return d.Value()
}

// Has reports whether the item with the given ident has a value.
func (t *Tag) Has(id Ident) bool {
	_, ok := t.Value(id)
	return ok
}

// Set stores v as the value of the item with the given ident, adding the
// item if the tag does not have it yet.
func (t *Tag) Set(id Ident, v Value) {
	item := t.ilst.Child(id)
	if item == nil {
		item = atom.NewItem(id)
		t.ilst.AddChild(item)
	}
	item.Child(dataIdent).SetValue(v)
	t.changed[id] = true
}

// Remove deletes the item with the given ident. Removing an absent item is a
// no-op, but the item is still dropped from the file on save.
func (t *Tag) Remove(id Ident) {
	if item := t.ilst.Child(id); item != nil {
		item.Reset()
	}
	t.changed[id] = true
}

// Clear removes every item known to the tag.
func (t *Tag) Clear() {
	for _, item := range t.ilst.Children() {
		item.Reset()
		t.changed[item.Ident] = true
	}
}

// All iterates over the items that have a value, in item list order.
//
//	for id, v := range tag.All() {
//		fmt.Printf("%s: %s\n", id, v)
//	}
func (t *Tag) All() iter.Seq2[Ident, Value] {
	return func(yield func(Ident, Value) bool) {
		for _, item := range t.ilst.Children() {
			d := item.Child(dataIdent)
			if d == nil {
				continue
			}
			v, ok := d.Value()
			if !ok {
				continue
			}
			if !yield(item.Ident, v) {
				return
			}
		}
	}
}

// Len returns the number of items that have a value.
func (t *Tag) Len() int {
	n := 0
	for range t.All() {
		n++
	}
	return n
}

// Modified reports whether any item changed since the tag was read or last
// saved.
func (t *Tag) Modified() bool {
	return len(t.changed) > 0
}

// Changed returns the idents set or removed since the tag was read or last
// saved, in item list order.
func (t *Tag) Changed() []Ident {
	var out []Ident
	for _, item := range t.ilst.Children() {
		if t.changed[item.Ident] {
			out = append(out, item.Ident)
		}
	}
	// Removed idents the tag never held have no item.
	for id := range t.changed {
		if t.ilst.Child(id) == nil {
			out = append(out, id)
		}
	}
	return out
}

func (t *Tag) isChanged(id Ident) bool {
	return t.changed[id]
}

// EncodeItems returns the encoded item list atom (ilst) for the present
// items.
func (t *Tag) EncodeItems() ([]byte, error) {
	return atom.Encode(t.ilst)
}
