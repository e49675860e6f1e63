package atom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	bin "github.com/simonhull/mp4meta/internal/binary"
	"github.com/simonhull/mp4meta/internal/data"
	"github.com/simonhull/mp4meta/internal/registry"
	"github.com/simonhull/mp4meta/internal/types"
)

// Header sizes of the two atom framings.
const (
	HeaderSize         = 8
	ExtendedHeaderSize = 16
)

// Head is a decoded atom header.
type Head struct {
	Length     int64 // Total length including the header
	HeaderSize int64 // 8, or 16 for an extended size
	Fourcc     Fourcc
	Offset     int64 // Stream offset of the header
}

// ContentLength returns the length of the atom body.
func (h Head) ContentLength() int64 {
	return h.Length - h.HeaderSize
}

// Parser walks an atom stream and fills in atom templates.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	stream      *bin.Stream
	logger      logrus.FieldLogger
	maxDataSize int64
	path        []string
	warnings    []types.Warning
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithLogger sets the logger used for scan tracing and absorbed decode
// failures.
func WithLogger(l logrus.FieldLogger) ParserOption {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxDataSize limits the size of a single data payload. Larger payloads
// are skipped and reported as a warning. Zero means no limit.
func WithMaxDataSize(n int64) ParserOption {
	return func(p *Parser) {
		p.maxDataSize = n
	}
}

// DiscardLogger returns a logger that writes nothing. It is the default
// wherever no logger is configured.
func DiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewParser creates a Parser reading from s. Without WithLogger it logs
// nothing.
func NewParser(s *bin.Stream, opts ...ParserOption) *Parser {
	p := &Parser{
		stream: s,
		logger: DiscardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Warnings returns the non-fatal issues recorded so far.
func (p *Parser) Warnings() []types.Warning {
	return p.warnings
}

// sub returns a parser over a buffered atom body that shares this parser's
// settings and position in the tree.
func (p *Parser) sub(body []byte) *Parser {
	return &Parser{
		stream:      bin.NewStream(bytes.NewReader(body), int64(len(body)), p.stream.Path()),
		logger:      p.logger,
		maxDataSize: p.maxDataSize,
		path:        append([]string(nil), p.path...),
	}
}

func (p *Parser) where() string {
	return strings.Join(p.path, ".")
}

func (p *Parser) fields(h Head) logrus.Fields {
	return logrus.Fields{
		"atom":   h.Fourcc.String(),
		"offset": h.Offset,
		"length": h.Length,
	}
}

func (p *Parser) warn(h Head, msg string) {
	w := types.Warning{
		Stage:   "metadata",
		Ident:   p.where(),
		Message: msg,
		Offset:  h.Offset,
	}
	p.warnings = append(p.warnings, w)
	p.logger.WithFields(p.fields(h)).Warn(msg)
}

// ParseHead reads the next atom header.
//
// A stream that ends before a full header yields an error wrapping io.EOF
// (nothing read) or io.ErrUnexpectedEOF (partial header).
func (p *Parser) ParseHead() (Head, error) {
	off := p.stream.Offset()

	var buf [HeaderSize]byte
	if err := p.stream.ReadFull(buf[:]); err != nil {
		return Head{}, fmt.Errorf("reading atom header at offset %d: %w", off, err)
	}

	h := Head{
		Length:     int64(binary.BigEndian.Uint32(buf[0:4])),
		HeaderSize: HeaderSize,
		Offset:     off,
	}
	copy(h.Fourcc[:], buf[4:8])

	if h.Length == 1 {
		ext, err := bin.Next[uint64](p.stream)
		if err != nil {
			return Head{}, fmt.Errorf("reading extended size of atom %q at offset %d: %w",
				h.Fourcc, off, shortRead(err))
		}
		if ext > 1<<62 {
			return Head{}, &types.CorruptedFileError{
				Path:   p.stream.Path(),
				Offset: off,
				Reason: fmt.Sprintf("extended size %d of atom %q is too large", ext, h.Fourcc),
			}
		}
		h.Length = int64(ext)
		h.HeaderSize = ExtendedHeaderSize
	}

	if h.Length < h.HeaderSize {
		return Head{}, &types.CorruptedFileError{
			Path:   p.stream.Path(),
			Offset: off,
			Reason: fmt.Sprintf("invalid size %d of atom %q (minimum is %d)", h.Length, h.Fourcc, h.HeaderSize),
		}
	}
	return h, nil
}

// Parse scans sibling atoms until it finds one matching tpl and parses its
// content. Every other atom is skipped without being buffered.
//
// Reaching the end of the stream at an atom boundary yields an
// *AtomNotFoundError. An atom that runs past the end of the stream is a
// *BoundsExceededError when the stream size is known and a
// *CorruptedFileError otherwise.
func (p *Parser) Parse(tpl *Atom) error {
	for {
		h, err := p.ParseHead()
		if err != nil {
			if isEOF(err) {
				return p.notFound(tpl)
			}
			return err
		}

		if !tpl.Ident.IsFreeform() && h.Fourcc == tpl.Head() {
			p.logger.WithFields(p.fields(h)).Debug("matched atom")
			return p.ParseContent(tpl, h)
		}

		p.logger.WithFields(p.fields(h)).Trace("skipping atom")
		if err := p.skip(h, h.ContentLength()); err != nil {
			return err
		}
	}
}

func (p *Parser) notFound(tpl *Atom) error {
	return &types.AtomNotFoundError{
		Path:   p.stream.Path(),
		Ident:  tpl.Ident.String(),
		Offset: p.stream.Offset(),
	}
}

// ParseAtoms scans the sibling atoms of a parent body of budget bytes and
// parses those matched by tpls.
//
// The first template in list order with the atom's identifier claims it.
// A template matches at most once; later duplicates are skipped, as are
// atoms no template names. Scanning stops once every template matched or the
// budget is consumed, and the stream is always left at the end of the
// budget.
func (p *Parser) ParseAtoms(tpls []*Atom, budget int64) error {
	matched := make([]bool, len(tpls))
	left := len(tpls)
	hasFreeform := false
	for _, t := range tpls {
		if t.Ident.IsFreeform() {
			hasFreeform = true
			break
		}
	}

	var consumed int64
	for consumed < budget && left > 0 {
		if budget-consumed < HeaderSize {
			// Too short for a header: trailing padding inside the parent.
			p.logger.WithField("offset", p.stream.Offset()).WithField("length", budget-consumed).Trace("skipping padding")
			break
		}
		h, err := p.ParseHead()
		if err != nil {
			if isEOF(err) {
				return p.truncated(h, err)
			}
			return err
		}

		if remaining := budget - consumed; h.Length > remaining {
			return &types.BoundsExceededError{
				Path:      p.stream.Path(),
				Ident:     h.Fourcc.String(),
				What:      "length",
				Offset:    h.Offset,
				Length:    h.Length,
				Remaining: remaining,
			}
		}
		consumed += h.Length

		if hasFreeform && h.Fourcc == Freeform {
			ok, err := p.parseFreeform(tpls, matched, h)
			if err != nil {
				return err
			}
			if ok {
				left--
			}
			continue
		}

		i := matchFourcc(tpls, matched, h.Fourcc)
		if i < 0 {
			p.logger.WithFields(p.fields(h)).Trace("skipping atom")
			if err := p.skip(h, h.ContentLength()); err != nil {
				return err
			}
			continue
		}

		matched[i] = true
		left--
		p.logger.WithFields(p.fields(h)).Debug("matched atom")
		if err := p.ParseContent(tpls[i], h); err != nil {
			return err
		}
	}

	if consumed < budget {
		return p.skip(Head{Offset: p.stream.Offset()}, budget-consumed)
	}
	return nil
}

// matchFourcc returns the index of the first unmatched fourcc template with
// the given head, or -1. A matched template with the same head means a
// duplicate, which is skipped.
func matchFourcc(tpls []*Atom, matched []bool, f Fourcc) int {
	for i, t := range tpls {
		if t.Ident.IsFreeform() || t.Head() != f {
			continue
		}
		if !matched[i] {
			return i
		}
	}
	return -1
}

// parseFreeform buffers the body of a ---- atom, reads its mean and name to
// learn its identity and parses it into the matching template, if any.
func (p *Parser) parseFreeform(tpls []*Atom, matched []bool, h Head) (bool, error) {
	if n := h.ContentLength(); p.maxDataSize > 0 && n > p.maxDataSize {
		p.warn(h, fmt.Sprintf("freeform atom of %d bytes exceeds limit of %d bytes", n, p.maxDataSize))
		return false, p.skip(h, n)
	}
	body, err := p.readBody(h, h.ContentLength())
	if err != nil {
		return false, err
	}

	mean := NewRawData(Mean, 4, data.KindUTF8)
	name := NewRawData(Name, 4, data.KindUTF8)
	ids := p.sub(body)
	if err := ids.ParseAtoms([]*Atom{mean, name}, int64(len(body))); err != nil {
		return false, err
	}
	meanValue, okMean := mean.Value()
	nameValue, okName := name.Value()
	if !okMean || !okName {
		p.logger.WithFields(p.fields(h)).Debug("skipping freeform atom without mean or name")
		return false, nil
	}

	ident := FreeformIdent(meanValue.Text, nameValue.Text)
	for i, t := range tpls {
		if t.Ident != ident {
			continue
		}
		if matched[i] {
			break
		}
		matched[i] = true
		p.logger.WithFields(p.fields(h)).WithField("ident", ident.String()).Debug("matched freeform atom")

		sp := p.sub(body)
		sp.path = append(sp.path, ident.String())
		t.Found = true
		err := sp.ParseAtoms(t.Content.Atoms, int64(len(body)))
		p.warnings = append(p.warnings, sp.warnings...)
		return true, err
	}

	p.logger.WithFields(p.fields(h)).WithField("ident", ident.String()).Trace("skipping freeform atom")
	return false, nil
}

// ParseContent parses the body of the atom described by h into a.
func (p *Parser) ParseContent(a *Atom, h Head) error {
	a.Found = true
	body := h.ContentLength()
	if body <= 0 {
		// Found but empty: the content kind stays, the payload is cleared.
		a.Content.Data = nil
		return nil
	}

	if rem := p.stream.Remaining(); rem >= 0 && body > rem {
		return &types.BoundsExceededError{
			Path:      p.stream.Path(),
			Ident:     a.Ident.String(),
			What:      "content",
			Offset:    h.Offset,
			Length:    body,
			Remaining: rem,
		}
	}
	if int64(a.Offset) > body {
		return &types.BoundsExceededError{
			Path:      p.stream.Path(),
			Ident:     a.Ident.String(),
			What:      "offset",
			Offset:    h.Offset,
			Length:    int64(a.Offset),
			Remaining: body,
		}
	}

	p.path = append(p.path, a.Ident.String())
	defer func() { p.path = p.path[:len(p.path)-1] }()

	if err := p.skip(h, int64(a.Offset)); err != nil {
		return err
	}
	n := body - int64(a.Offset)

	switch a.Content.Kind {
	case ContentAtoms:
		return p.ParseAtoms(a.Content.Atoms, n)

	case ContentRawData, ContentTypedData:
		if p.maxDataSize > 0 && n > p.maxDataSize {
			a.Content.Data = nil
			p.warn(h, fmt.Sprintf("payload of %d bytes exceeds limit of %d bytes", n, p.maxDataSize))
			return p.skip(h, n)
		}
		b, err := p.readBody(h, n)
		if err != nil {
			return err
		}
		p.decode(a, h, b)
		return nil

	default:
		return p.skip(h, n)
	}
}

// decode stores the decoded payload in a. Decode failures are not fatal:
// the value stays absent and a warning is recorded.
func (p *Parser) decode(a *Atom, h Head, b []byte) {
	var (
		v   data.Value
		err error
	)
	if a.Content.Kind == ContentTypedData {
		v, err = data.ParseTyped(b)
	} else {
		v, err = data.ParseRaw(a.Content.RawKind, b)
	}

	var unknown *data.UnknownTypeCodeError
	switch {
	case err == nil:
		a.SetValue(v)
	case errors.As(err, &unknown):
		p.logger.WithFields(p.fields(h)).WithField("type", unknown.Code).Debug("keeping data of unknown type")
		a.SetValue(v)
	default:
		a.Content.Data = nil
		p.warn(h, err.Error())
	}
}

func (p *Parser) readBody(h Head, n int64) ([]byte, error) {
	if rem := p.stream.Remaining(); rem >= 0 && n > rem {
		return nil, p.exceeded(h, n, rem)
	}
	b, err := p.stream.ReadN(n)
	if err != nil {
		return nil, p.truncated(h, err)
	}
	return b, nil
}

func (p *Parser) skip(h Head, n int64) error {
	if rem := p.stream.Remaining(); rem >= 0 && n > rem {
		return p.exceeded(h, n, rem)
	}
	if err := p.stream.Skip(n); err != nil {
		return p.truncated(h, err)
	}
	return nil
}

func (p *Parser) exceeded(h Head, n, rem int64) error {
	return &types.BoundsExceededError{
		Path:      p.stream.Path(),
		Ident:     h.Fourcc.String(),
		What:      "content",
		Offset:    h.Offset,
		Length:    n,
		Remaining: rem,
	}
}

// truncated reports a stream that ended inside an atom. Errors other than
// end of stream are passed through with context.
func (p *Parser) truncated(h Head, err error) error {
	if !isEOF(err) {
		return fmt.Errorf("atom %q at offset %d: %w", h.Fourcc, h.Offset, err)
	}
	return &types.CorruptedFileError{
		Path:   p.stream.Path(),
		Offset: p.stream.Offset(),
		Reason: fmt.Sprintf("stream ended inside %s", p.describe(h)),
	}
}

func (p *Parser) describe(h Head) string {
	if h.Fourcc == (Fourcc{}) {
		if w := p.where(); w != "" {
			return w
		}
		return "atom"
	}
	return fmt.Sprintf("atom %q", h.Fourcc)
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func shortRead(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Tree is the populated result of reading a tag.
type Tree struct {
	FileType *Atom
	Movie    *Atom
	Format   types.Format
	Brand    string
	Warnings []types.Warning
}

// ReadTag reads the file type and metadata atoms from s.
//
// The major brand must be registered in the file type registry, otherwise
// a *NoTagError is returned. A stream without a moov atom yields an
// *AtomNotFoundError.
func ReadTag(s *bin.Stream, opts ...ParserOption) (*Tree, error) {
	return ReadTagItems(s, knownItems, opts...)
}

// ReadTagItems is like ReadTag but matches the given items instead of the
// known set.
func ReadTagItems(s *bin.Stream, items []Ident, opts ...ParserOption) (*Tree, error) {
	p := NewParser(s, opts...)

	ftyp := FileTypeTemplate()
	if err := p.Parse(ftyp); err != nil {
		return nil, err
	}

	var text string
	if v, ok := ftyp.Value(); ok {
		text = v.Text
	}
	brand := majorBrand(text)
	format, ok := registry.Lookup(text)
	if !ok {
		return nil, &types.NoTagError{Path: s.Path(), Brand: brand}
	}
	p.logger.WithFields(logrus.Fields{"format": format.String(), "brand": brand}).Debug("accepted file type")

	moov := MetadataTemplateFor(items)
	if err := p.Parse(moov); err != nil {
		return nil, err
	}

	return &Tree{
		FileType: ftyp,
		Movie:    moov,
		Format:   format,
		Brand:    brand,
		Warnings: p.warnings,
	}, nil
}

// majorBrand returns the first four bytes of the ftyp text.
func majorBrand(text string) string {
	if len(text) > 4 {
		return text[:4]
	}
	return text
}
