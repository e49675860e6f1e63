package mp4meta

import "github.com/simonhull/mp4meta/internal/data"

// Value is the decoded payload of a data atom.
type Value = data.Value

// DataKind is the representation held by a Value.
type DataKind = data.Kind

// Value kinds.
const (
	KindUnparsed = data.KindUnparsed
	KindReserved = data.KindReserved
	KindUTF8     = data.KindUTF8
	KindUTF16    = data.KindUTF16
	KindJPEG     = data.KindJPEG
	KindPNG      = data.KindPNG
	KindBMP      = data.KindBMP
	KindInt      = data.KindInt
	KindUint     = data.KindUint
)

// Text returns a UTF-8 text value.
func Text(s string) Value { return data.UTF8(s) }

// UTF16Text returns a text value stored as UTF-16.
func UTF16Text(s string) Value { return data.UTF16(s) }

// Int returns a signed integer value. A width of 0 picks the smallest of 1,
// 2, 4 or 8 bytes that holds v.
func Int(v int64, width int) Value { return data.Int(v, width) }

// Uint returns an unsigned integer value. A width of 0 picks the smallest
// width that holds v.
func Uint(v uint64, width int) Value { return data.Uint(v, width) }

// Flag returns the one byte integer iTunes uses for boolean items.
func Flag(b bool) Value { return data.Bool(b) }

// Binary returns an implicit binary value (type 0).
func Binary(b []byte) Value { return data.Reserved(b) }
