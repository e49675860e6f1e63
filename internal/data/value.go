// Package data decodes and encodes the typed payload of iTunes data atoms.
//
// A data atom body starts with a 4-byte type indicator (1 version byte and a
// 24-bit well-known type) and a 4-byte locale, followed by the value bytes.
// Unknown type indicators decode to KindUnparsed, which keeps the raw bytes so
// the item is written back unchanged.
package data

import (
	"fmt"
	"unicode/utf8"
)

// Well-known type indicators.
const (
	TypeReserved   uint32 = 0  // Implicit binary, interpreted by the item (trkn, disk, gnre)
	TypeUTF8       uint32 = 1  // UTF-8 text without terminator
	TypeUTF16      uint32 = 2  // UTF-16 big endian text without BOM
	TypeJPEG       uint32 = 13 // JPEG image
	TypePNG        uint32 = 14 // PNG image
	TypeBESigned   uint32 = 21 // Big endian signed integer of 1, 2, 3, 4 or 8 bytes
	TypeBEUnsigned uint32 = 22 // Big endian unsigned integer of 1, 2, 3, 4 or 8 bytes
	TypeBMP        uint32 = 27 // BMP image
	TypeInt8       uint32 = 65
	TypeInt16      uint32 = 66
	TypeInt32      uint32 = 67
	TypeInt64      uint32 = 74
	TypeUint8      uint32 = 75
	TypeUint16     uint32 = 76
	TypeUint32     uint32 = 77
	TypeUint64     uint32 = 78
)

// HeaderSize is the length of the type indicator and locale prefix.
const HeaderSize = 8

// Kind is the decoded representation of a Value.
type Kind uint8

const (
	// KindUnparsed holds raw bytes for an unrecognised type indicator.
	KindUnparsed Kind = iota
	// KindReserved holds implicit binary data (type 0).
	KindReserved
	// KindUTF8 holds text stored as UTF-8.
	KindUTF8
	// KindUTF16 holds text stored as UTF-16 big endian.
	KindUTF16
	// KindJPEG holds JPEG image bytes.
	KindJPEG
	// KindPNG holds PNG image bytes.
	KindPNG
	// KindBMP holds BMP image bytes.
	KindBMP
	// KindInt holds a signed integer.
	KindInt
	// KindUint holds an unsigned integer.
	KindUint
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnparsed:
		return "unparsed"
	case KindReserved:
		return "reserved"
	case KindUTF8:
		return "utf-8"
	case KindUTF16:
		return "utf-16"
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	case KindBMP:
		return "bmp"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a decoded data atom payload.
//
// Only the fields relevant to Kind are meaningful: Text for the text kinds,
// Int or Uint plus Width for integers, Bytes for images, reserved and
// unparsed data.
type Value struct {
	Kind   Kind
	Type   uint32 // Type indicator word as stored
	Locale uint32
	Text   string
	Int    int64
	Uint   uint64
	Width  int // Integer width in bytes
	Bytes  []byte
}

// UTF8 returns a UTF-8 text value.
func UTF8(s string) Value {
	return Value{Kind: KindUTF8, Type: TypeUTF8, Text: s}
}

// UTF16 returns a UTF-16 text value.
func UTF16(s string) Value {
	return Value{Kind: KindUTF16, Type: TypeUTF16, Text: s}
}

// JPEG returns a JPEG image value.
func JPEG(b []byte) Value {
	return Value{Kind: KindJPEG, Type: TypeJPEG, Bytes: b}
}

// PNG returns a PNG image value.
func PNG(b []byte) Value {
	return Value{Kind: KindPNG, Type: TypePNG, Bytes: b}
}

// BMP returns a BMP image value.
func BMP(b []byte) Value {
	return Value{Kind: KindBMP, Type: TypeBMP, Bytes: b}
}

// Reserved returns an implicit binary value.
func Reserved(b []byte) Value {
	return Value{Kind: KindReserved, Type: TypeReserved, Bytes: b}
}

// Int returns a big endian signed integer value of the given width.
func Int(v int64, width int) Value {
	return Value{Kind: KindInt, Type: TypeBESigned, Int: v, Width: width}
}

// Uint returns a big endian unsigned integer value of the given width.
func Uint(v uint64, width int) Value {
	return Value{Kind: KindUint, Type: TypeBEUnsigned, Uint: v, Width: width}
}

// Bool returns a one byte signed integer holding 0 or 1, the form iTunes
// uses for flags such as cpil and pgap.
func Bool(b bool) Value {
	if b {
		return Int(1, 1)
	}
	return Int(0, 1)
}

// Unparsed returns a passthrough value with an arbitrary type indicator.
func Unparsed(typ, locale uint32, b []byte) Value {
	return Value{Kind: KindUnparsed, Type: typ, Locale: locale, Bytes: b}
}

// IsText reports whether v holds text.
func (v Value) IsText() bool {
	return v.Kind == KindUTF8 || v.Kind == KindUTF16
}

// IsImage reports whether v holds image bytes.
func (v Value) IsImage() bool {
	return v.Kind == KindJPEG || v.Kind == KindPNG || v.Kind == KindBMP
}

// AsText returns the text of a text value.
func (v Value) AsText() (string, bool) {
	if !v.IsText() {
		return "", false
	}
	return v.Text, true
}

// AsInt returns the value of an integer as int64.
func (v Value) AsInt() (int64, bool) {
	switch v.Kind {
	case KindInt:
		return v.Int, true
	case KindUint:
		return int64(v.Uint), true
	default:
		return 0, false
	}
}

// AsBool interprets an integer value as a flag.
func (v Value) AsBool() (bool, bool) {
	n, ok := v.AsInt()
	if !ok {
		return false, false
	}
	return n != 0, true
}

// MIMEType returns the MIME type of an image value, or "".
func (v Value) MIMEType() string {
	switch v.Kind {
	case KindJPEG:
		return "image/jpeg"
	case KindPNG:
		return "image/png"
	case KindBMP:
		return "image/bmp"
	default:
		return ""
	}
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind {
	case KindUTF8, KindUTF16:
		return v.Text
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindUint:
		return fmt.Sprintf("%d", v.Uint)
	case KindJPEG, KindPNG, KindBMP:
		return fmt.Sprintf("<%s image: %d bytes>", v.Kind, len(v.Bytes))
	case KindReserved:
		return fmt.Sprintf("<binary: % x>", v.Bytes)
	default:
		if utf8.Valid(v.Bytes) && len(v.Bytes) > 0 {
			return fmt.Sprintf("<type %d: %q>", v.Type, v.Bytes)
		}
		return fmt.Sprintf("<type %d: %d bytes>", v.Type, len(v.Bytes))
	}
}
