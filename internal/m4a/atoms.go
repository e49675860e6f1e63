// Package m4a rewrites the iTunes item list of an MPEG-4 file in place.
//
// The atom tree engine reads a tag by streaming forward; writing needs random
// access instead, so this package walks atom headers over an io.ReaderAt,
// splices a new ilst into the moov atom and fixes up every length and chunk
// offset the change affects.
package m4a

import (
	"fmt"

	"github.com/simonhull/mp4meta/internal/binary"
	"github.com/simonhull/mp4meta/internal/types"
)

// minHeaderSize is the length of a compact atom header.
const minHeaderSize = 8

// header is an atom header located in a file or buffer.
type header struct {
	Size     uint64 // Total size including header
	Type     string // 4-character type code
	Offset   int64  // Position of the header
	Extended bool   // Whether this uses 64-bit extended size
}

func (h *header) headerSize() int64 {
	if h.Extended {
		return 16
	}
	return 8
}

// DataSize returns the size of the atom's data (excluding header)
func (h *header) DataSize() int64 {
	if h.Size < uint64(h.headerSize()) {
		return 0
	}
	return int64(h.Size) - h.headerSize()
}

// DataOffset returns the position where the atom's data starts
func (h *header) DataOffset() int64 {
	return h.Offset + h.headerSize()
}

// End returns the position just past the atom.
func (h *header) End() int64 {
	return h.Offset + int64(h.Size)
}

// containerTypes lists atoms whose data is a sequence of child atoms.
var containerTypes = map[string]bool{
	"moov": true, // Movie container
	"udta": true, // User data
	"meta": true, // Metadata container
	"ilst": true, // iTunes metadata list
	"trak": true, // Track container
	"mdia": true, // Media container
	"minf": true, // Media information
	"stbl": true, // Sample table
	"edts": true, // Edit list container
	"----": true, // Freeform item
}

// IsContainer returns true if this atom type can contain other atoms
func (h *header) IsContainer() bool {
	return containerTypes[h.Type]
}

// childOffset returns where the children of a container start. meta has a
// version/flags field ahead of its children.
func (h *header) childOffset() int64 {
	if h.Type == "meta" {
		return h.DataOffset() + 4
	}
	return h.DataOffset()
}

// readAtomHeader reads an atom header at the given offset
func readAtomHeader(sr *binary.SafeReader, offset int64) (*header, error) {
	// Read size (4 bytes)
	size32, err := binary.Read[uint32](sr, offset, "atom size")
	if err != nil {
		return nil, err
	}

	// Read type (4 bytes)
	typeBytes := make([]byte, 4)
	if err := sr.ReadAt(typeBytes, offset+4, "atom type"); err != nil {
		return nil, err
	}

	h := &header{
		Type:   string(typeBytes),
		Offset: offset,
	}

	// Handle extended size (size == 1 means 64-bit size follows)
	if size32 == 1 {
		size64, err := binary.Read[uint64](sr, offset+8, "extended atom size")
		if err != nil {
			return nil, err
		}
		h.Size = size64
		h.Extended = true
	} else {
		h.Size = uint64(size32)
	}

	// Validate atom size
	if h.Size < uint64(h.headerSize()) {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("invalid size %d of atom %q (minimum is %d)", h.Size, h.Type, h.headerSize()),
		}
	}
	if h.Size > uint64(sr.Size()-offset) {
		return nil, &types.BoundsExceededError{
			Path:      sr.Path(),
			Ident:     h.Type,
			What:      "length",
			Offset:    offset,
			Length:    int64(min(h.Size, 1<<62)),
			Remaining: sr.Size() - offset,
		}
	}

	return h, nil
}

// findAtom searches for an atom of the given type within a range
// Returns the first matching atom or an *AtomNotFoundError.
func findAtom(sr *binary.SafeReader, start, end int64, atomType string) (*header, error) {
	offset := start

	// Fewer than 8 trailing bytes are padding, such as the zero terminator
	// QuickTime writes at the end of udta.
	for end-offset >= minHeaderSize {
		h, err := readAtomHeader(sr, offset)
		if err != nil {
			return nil, err
		}
		if h.End() > end {
			return nil, &types.BoundsExceededError{
				Path:      sr.Path(),
				Ident:     h.Type,
				What:      "length",
				Offset:    offset,
				Length:    int64(h.Size),
				Remaining: end - offset,
			}
		}

		if h.Type == atomType {
			return h, nil
		}

		// Move to next atom
		offset = h.End()
	}

	return nil, &types.AtomNotFoundError{Path: sr.Path(), Ident: atomType, Offset: offset}
}

// children returns the headers of the atoms between start and end.
func children(sr *binary.SafeReader, start, end int64) ([]*header, error) {
	var out []*header
	for offset := start; end-offset >= minHeaderSize; {
		h, err := readAtomHeader(sr, offset)
		if err != nil {
			return nil, err
		}
		if h.End() > end {
			return nil, &types.BoundsExceededError{
				Path:      sr.Path(),
				Ident:     h.Type,
				What:      "length",
				Offset:    offset,
				Length:    int64(h.Size),
				Remaining: end - offset,
			}
		}
		out = append(out, h)
		offset = h.End()
	}
	return out, nil
}

// Node describes one atom visited by Walk.
type Node struct {
	Type   string
	Offset int64
	Size   uint64
	Depth  int
}

// Walk visits every atom between start and end depth first, descending
// into containers and ilst items.
func Walk(sr *binary.SafeReader, start, end int64, fn func(Node) error) error {
	return walk(sr, start, end, 0, "", fn)
}

func walk(sr *binary.SafeReader, start, end int64, depth int, parent string, fn func(Node) error) error {
	hs, err := children(sr, start, end)
	if err != nil {
		return err
	}
	for _, h := range hs {
		if err := fn(Node{Type: h.Type, Offset: h.Offset, Size: h.Size, Depth: depth}); err != nil {
			return err
		}
		// Every ilst child is an item wrapping data atoms.
		if h.IsContainer() || parent == "ilst" {
			if err := walk(sr, h.childOffset(), h.End(), depth+1, h.Type, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
