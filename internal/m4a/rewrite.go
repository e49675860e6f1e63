package m4a

import (
	"bytes"
	stdbinary "encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/simonhull/mp4meta/internal/atom"
	"github.com/simonhull/mp4meta/internal/binary"
	"github.com/simonhull/mp4meta/internal/types"
)

var be = stdbinary.BigEndian

// Edit describes the new content of the item list.
type Edit struct {
	// Items are the ilst items of the tag tree, in output order. Items that
	// are not present count as removed.
	Items []*atom.Atom

	// Changed reports whether the original items with the given identifier
	// are replaced. When nil, every identifier named by Items is replaced.
	Changed func(atom.Ident) bool
}

func (e *Edit) changed(id atom.Ident, covered map[atom.Ident]*atom.Atom) bool {
	if e.Changed != nil {
		return e.Changed(id)
	}
	_, ok := covered[id]
	return ok
}

// Result summarises a rewrite.
type Result struct {
	Delta         int64    // Change in file size
	Kept          int      // Original items copied unchanged
	Replaced      int      // Original items replaced by the tree's encoding
	Removed       int      // Original items dropped
	Appended      int      // Items not in the original
	ShiftedChunks int      // Chunk offsets moved by Delta
	Created       []string // Atoms created on the metadata path
}

// Option configures Rewrite.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

// WithLogger sets the logger for rewrite progress.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Rewrite copies the MPEG-4 file in r to w with the item list of
// moov > udta > meta > ilst rebuilt from edit.
//
// Everything outside moov is copied byte for byte. Inside moov, only the
// item list changes; the lengths of its ancestors are patched and, when
// media data follows moov, every stco and co64 chunk offset is shifted so it
// still points at the same sample data.
func Rewrite(w io.Writer, r io.ReaderAt, size int64, path string, edit Edit, opts ...Option) (Result, error) {
	o := options{logger: atom.DiscardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	var res Result
	sr := binary.NewSafeReader(r, size, path)

	moov, err := findAtom(sr, 0, size, "moov")
	if err != nil {
		return res, err
	}

	buf := make([]byte, moov.Size)
	if err := sr.ReadAt(buf, moov.Offset, "moov atom"); err != nil {
		return res, err
	}
	mb := binary.NewSafeReader(bytes.NewReader(buf), int64(len(buf)), path)

	chain, err := metadataPath(mb)
	if err != nil {
		return res, err
	}

	var original []*header
	if len(chain) == 4 {
		ilst := chain[3]
		if original, err = children(mb, ilst.DataOffset(), ilst.End()); err != nil {
			return res, err
		}
	}

	body, err := buildItemList(mb, buf, original, &edit, &res)
	if err != nil {
		return res, err
	}

	var (
		insert    []byte
		at, cut   int64
		ancestors []*header
	)
	if len(chain) == 4 {
		ilst := chain[3]
		if insert, err = box("ilst", body); err != nil {
			return res, err
		}
		at, cut = ilst.Offset, ilst.End()
		ancestors = chain[:3]
	} else {
		if len(body) == 0 {
			// Nothing to write and nowhere it was written before.
			return res, copyRange(w, r, 0, size)
		}
		if insert, err = createMissing(len(chain), body, &res); err != nil {
			return res, err
		}
		deepest := chain[len(chain)-1]
		at, cut = deepest.End(), deepest.End()
		ancestors = chain
	}

	newMoov := make([]byte, 0, int64(len(buf))+int64(len(insert))-(cut-at))
	newMoov = append(newMoov, buf[:at]...)
	newMoov = append(newMoov, insert...)
	newMoov = append(newMoov, buf[cut:]...)
	res.Delta = int64(len(insert)) - (cut - at)

	for _, h := range ancestors {
		if err := patchSize(newMoov, h, res.Delta, path); err != nil {
			return res, err
		}
	}

	if res.Delta != 0 {
		if res.ShiftedChunks, err = shiftChunkOffsets(newMoov, moov.End(), res.Delta, path); err != nil {
			return res, err
		}
	}

	o.logger.WithFields(logrus.Fields{
		"path":     path,
		"delta":    res.Delta,
		"kept":     res.Kept,
		"replaced": res.Replaced,
		"removed":  res.Removed,
		"appended": res.Appended,
		"chunks":   res.ShiftedChunks,
	}).Debug("rewrote item list")

	if err := copyRange(w, r, 0, moov.Offset); err != nil {
		return res, err
	}
	if _, err := w.Write(newMoov); err != nil {
		return res, fmt.Errorf("%s: writing moov atom: %w", path, err)
	}
	return res, copyRange(w, r, moov.End(), size-moov.End())
}

// metadataPath returns the headers of moov, udta, meta and ilst within a
// buffered moov atom, stopping at the first level that is missing.
func metadataPath(mb *binary.SafeReader) ([]*header, error) {
	root, err := readAtomHeader(mb, 0)
	if err != nil {
		return nil, err
	}

	chain := []*header{root}
	cur := root
	for _, name := range []string{"udta", "meta", "ilst"} {
		h, err := findAtom(mb, cur.childOffset(), cur.End(), name)
		if errors.Is(err, types.ErrAtomNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		chain = append(chain, h)
		cur = h
	}
	return chain, nil
}

// buildItemList returns the new ilst body. Original items keep their order;
// changed items are replaced at their first occurrence or dropped, and
// changed items new to the file are appended.
func buildItemList(mb *binary.SafeReader, buf []byte, original []*header, edit *Edit, res *Result) ([]byte, error) {
	covered := make(map[atom.Ident]*atom.Atom, len(edit.Items))
	for _, a := range edit.Items {
		if _, ok := covered[a.Ident]; !ok {
			covered[a.Ident] = a
		}
	}

	var out bytes.Buffer
	emitted := make(map[atom.Ident]bool)

	for _, h := range original {
		id, err := itemIdent(mb, buf, h)
		if err != nil {
			return nil, err
		}
		if !edit.changed(id, covered) {
			out.Write(buf[h.Offset:h.End()])
			res.Kept++
			continue
		}
		if emitted[id] {
			res.Removed++
			continue
		}
		emitted[id] = true

		a := covered[id]
		if a == nil || !a.Present() {
			res.Removed++
			continue
		}
		if err := atom.WriteTo(&out, a); err != nil {
			return nil, err
		}
		res.Replaced++
	}

	for _, a := range edit.Items {
		if emitted[a.Ident] || !a.Present() || !edit.changed(a.Ident, covered) {
			continue
		}
		emitted[a.Ident] = true
		if err := atom.WriteTo(&out, a); err != nil {
			return nil, err
		}
		res.Appended++
	}

	return out.Bytes(), nil
}

// itemIdent returns the identifier of an ilst item. Freeform items are
// identified by their mean and name children.
func itemIdent(mb *binary.SafeReader, buf []byte, h *header) (atom.Ident, error) {
	var f atom.Fourcc
	copy(f[:], h.Type)
	if f != atom.Freeform {
		return atom.FourccIdent(f), nil
	}

	hs, err := children(mb, h.DataOffset(), h.End())
	if err != nil {
		return atom.Ident{}, err
	}
	var mean, name string
	var okMean, okName bool
	for _, c := range hs {
		if c.DataSize() < 4 {
			continue
		}
		text := string(buf[c.DataOffset()+4 : c.End()])
		switch {
		case c.Type == "mean" && !okMean:
			mean, okMean = text, true
		case c.Type == "name" && !okName:
			name, okName = text, true
		}
	}
	if !okMean || !okName {
		return atom.FourccIdent(f), nil
	}
	return atom.FreeformIdent(mean, name), nil
}

// createMissing builds the metadata levels below the deepest existing one.
// existing counts the levels present, starting with moov.
func createMissing(existing int, ilstBody []byte, res *Result) ([]byte, error) {
	out, err := box("ilst", ilstBody)
	if err != nil {
		return nil, err
	}
	res.Created = append(res.Created, "ilst")
	if existing >= 3 {
		return out, nil
	}

	if out, err = box("meta", make([]byte, 4), handlerBox(), out); err != nil {
		return nil, err
	}
	res.Created = append(res.Created, "meta")
	if existing >= 2 {
		return out, nil
	}

	if out, err = box("udta", out); err != nil {
		return nil, err
	}
	res.Created = append(res.Created, "udta")
	return out, nil
}

// handlerBox returns the hdlr atom iTunes writes ahead of ilst.
func handlerBox() []byte {
	b := be.AppendUint32(make([]byte, 0, 33), 33)
	b = append(b, "hdlr"...)
	b = append(b, make([]byte, 8)...) // version/flags, pre-defined
	b = append(b, "mdirappl"...)
	return append(b, make([]byte, 9)...) // reserved, empty name
}

func box(typ string, parts ...[]byte) ([]byte, error) {
	n := int64(8)
	for _, p := range parts {
		n += int64(len(p))
	}
	if n > math.MaxUint32 {
		return nil, &types.UnsupportedWriteError{Reason: fmt.Sprintf("%s atom of %d bytes exceeds 32-bit size", typ, n)}
	}

	b := be.AppendUint32(make([]byte, 0, n), uint32(n))
	b = append(b, typ...)
	for _, p := range parts {
		b = append(b, p...)
	}
	return b, nil
}

// patchSize adds delta to the size field of h in buf.
func patchSize(buf []byte, h *header, delta int64, path string) error {
	if h.Extended {
		off := h.Offset + 8
		v := int64(be.Uint64(buf[off:])) + delta
		be.PutUint64(buf[off:], uint64(v))
		return nil
	}

	v := int64(be.Uint32(buf[h.Offset:])) + delta
	if v > math.MaxUint32 {
		return &types.UnsupportedWriteError{
			Path:   path,
			Reason: fmt.Sprintf("%s atom grows to %d bytes, beyond its 32-bit size field", h.Type, v),
		}
	}
	be.PutUint32(buf[h.Offset:], uint32(v))
	return nil
}

// shiftChunkOffsets moves every chunk offset at or past moovEnd by delta.
// Offsets before moov point at media data that does not move.
func shiftChunkOffsets(moov []byte, moovEnd, delta int64, path string) (int, error) {
	mb := binary.NewSafeReader(bytes.NewReader(moov), int64(len(moov)), path)
	root, err := readAtomHeader(mb, 0)
	if err != nil {
		return 0, err
	}
	traks, err := children(mb, root.DataOffset(), root.End())
	if err != nil {
		return 0, err
	}

	shifted := 0
	for _, trak := range traks {
		if trak.Type == "mvex" {
			return 0, &types.UnsupportedWriteError{Path: path, Reason: "resizing fragmented files is not supported"}
		}
		if trak.Type != "trak" {
			continue
		}

		stbl, err := findPath(mb, trak, "mdia", "minf", "stbl")
		if err != nil {
			if errors.Is(err, types.ErrAtomNotFound) {
				continue
			}
			return 0, err
		}
		tables, err := children(mb, stbl.DataOffset(), stbl.End())
		if err != nil {
			return 0, err
		}
		for _, t := range tables {
			switch t.Type {
			case "stco":
				n, err := shiftTable(moov, t, 4, moovEnd, delta, path)
				if err != nil {
					return 0, err
				}
				shifted += n
			case "co64":
				n, err := shiftTable(moov, t, 8, moovEnd, delta, path)
				if err != nil {
					return 0, err
				}
				shifted += n
			}
		}
	}
	return shifted, nil
}

func findPath(mb *binary.SafeReader, from *header, names ...string) (*header, error) {
	cur := from
	for _, name := range names {
		h, err := findAtom(mb, cur.childOffset(), cur.End(), name)
		if err != nil {
			return nil, err
		}
		cur = h
	}
	return cur, nil
}

// shiftTable rewrites the entries of a stco (width 4) or co64 (width 8)
// table in place.
func shiftTable(moov []byte, t *header, width int, moovEnd, delta int64, path string) (int, error) {
	body := moov[t.DataOffset():t.End()]
	if len(body) < 8 {
		return 0, &types.CorruptedFileError{Path: path, Offset: t.Offset, Reason: t.Type + " atom too short"}
	}
	count := int64(be.Uint32(body[4:8]))
	if 8+count*int64(width) > int64(len(body)) {
		return 0, &types.CorruptedFileError{
			Path:   path,
			Offset: t.Offset,
			Reason: fmt.Sprintf("%s declares %d entries but holds %d bytes", t.Type, count, len(body)-8),
		}
	}

	shifted := 0
	for i := range count {
		entry := body[8+i*int64(width):]
		if width == 4 {
			v := int64(be.Uint32(entry))
			if v < moovEnd {
				continue
			}
			v += delta
			if v > math.MaxUint32 {
				return 0, &types.UnsupportedWriteError{
					Path:   path,
					Reason: fmt.Sprintf("chunk offset %d exceeds 32-bit stco entry", v),
				}
			}
			be.PutUint32(entry, uint32(v))
		} else {
			v := int64(be.Uint64(entry))
			if v < moovEnd {
				continue
			}
			be.PutUint64(entry, uint64(v+delta))
		}
		shifted++
	}
	return shifted, nil
}

func copyRange(w io.Writer, r io.ReaderAt, off, n int64) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.Copy(w, io.NewSectionReader(r, off, n)); err != nil {
		return fmt.Errorf("copying %d bytes at offset %d: %w", n, off, err)
	}
	return nil
}
