// Package types holds the error, format and artwork types shared by the
// atom engine, the rewriter and the public package.
package types

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	ErrAtomNotFound   = errors.New("atom not found")
	ErrNoTag          = errors.New("no mpeg-4 audio metadata")
	ErrBoundsExceeded = errors.New("atom bounds exceeded")
)

// AtomNotFoundError is returned when the stream ends while scanning for a
// required atom.
//
// Optional metadata items never produce this error; they are simply absent.
// It surfaces for structural atoms such as ftyp and moov.
type AtomNotFoundError struct {
	Path   string
	Ident  string // Identifier that was being scanned for
	Offset int64  // Stream position where the scan gave up
}

func (e *AtomNotFoundError) Error() string {
	return fmt.Sprintf("%s: atom %q not found (reached end of stream at offset %d)", e.Path, e.Ident, e.Offset)
}

// Is reports whether target is ErrAtomNotFound.
func (e *AtomNotFoundError) Is(target error) bool {
	return target == ErrAtomNotFound
}

// NoTagError is returned when the file is a well-formed MPEG-4 container
// whose file type is not one of the accepted audio brands.
type NoTagError struct {
	Path  string
	Brand string
}

func (e *NoTagError) Error() string {
	return fmt.Sprintf("%s: file does not contain MPEG-4 audio metadata (file type %q)", e.Path, e.Brand)
}

// Is reports whether target is ErrNoTag.
func (e *NoTagError) Is(target error) bool {
	return target == ErrNoTag
}

// InvalidIdentLengthError is returned when a fourcc is built from a string
// that does not encode to exactly four bytes.
type InvalidIdentLengthError struct {
	Value  string
	Length int
}

func (e *InvalidIdentLengthError) Error() string {
	return fmt.Sprintf("invalid identifier %q: length %d, want 4 bytes", e.Value, e.Length)
}

// BoundsExceededError is returned when an atom's declared length does not fit
// in the space its parent (or the stream) has left.
//
// The stream cannot be trusted past this point, so parsing aborts.
type BoundsExceededError struct {
	Path      string
	Ident     string
	What      string
	Offset    int64
	Length    int64 // Declared length
	Remaining int64 // Bytes actually available
}

func (e *BoundsExceededError) Error() string {
	return fmt.Sprintf("%s: %s of atom %q at offset %d needs %d bytes but only %d remain",
		e.Path, e.What, e.Ident, e.Offset, e.Length, e.Remaining)
}

// Is reports whether target is ErrBoundsExceeded.
func (e *BoundsExceededError) Is(target error) bool {
	return target == ErrBoundsExceeded
}

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// Is reports whether target is ErrBoundsExceeded.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrBoundsExceeded
}

// CorruptedFileError is returned when file structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// UnsupportedWriteError indicates the tag cannot be written into the file.
type UnsupportedWriteError struct {
	Path   string
	Reason string
}

func (e *UnsupportedWriteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: write not supported: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: write not supported", e.Path)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - A data atom whose value does not decode for its type code
//   - An item atom without a data child
//   - Artwork in an unrecognised image format
//
// Warnings are collected on the Tag during parsing.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "metadata", "filetype", "artwork"

	// Dotted path of the atom involved from the outermost atom the parser
	// was asked for, e.g. "moov.udta.meta.ilst.©alb.data". Empty if none.
	Ident string

	// Warning message
	Message string

	// Stream offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	prefix := w.Stage
	if w.Ident != "" {
		prefix = fmt.Sprintf("%s [%s]", w.Stage, w.Ident)
	}
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", prefix, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", prefix, w.Message)
}
