package data

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// ParseTyped decodes the body of a data atom: type indicator, locale, value.
//
// An unknown type indicator yields a KindUnparsed value together with an
// *UnknownTypeCodeError; callers should keep the value. A payload that does
// not match a known type indicator yields a *DecodeError and no value.
func ParseTyped(b []byte) (Value, error) {
	if len(b) < HeaderSize {
		return Value{}, &DecodeError{
			Reason: fmt.Sprintf("body of %d bytes is shorter than the %d byte header", len(b), HeaderSize),
		}
	}

	typ := binary.BigEndian.Uint32(b[0:4])
	locale := binary.BigEndian.Uint32(b[4:8])
	payload := b[HeaderSize:]

	v, err := decodePayload(typ, payload)
	if err != nil {
		var unknown *UnknownTypeCodeError
		if errors.As(err, &unknown) {
			return Unparsed(typ, locale, bytes.Clone(payload)), err
		}
		return Value{}, err
	}

	v.Locale = locale
	return v, nil
}

// ParseRaw decodes a headerless payload as the given kind.
//
// Used for atoms such as ftyp, mean and name whose bodies are not wrapped in
// a data atom.
func ParseRaw(kind Kind, b []byte) (Value, error) {
	if kind == KindUnparsed {
		return Unparsed(TypeReserved, 0, bytes.Clone(b)), nil
	}
	return decodePayload(TypeFor(kind), b)
}

// TypeFor returns the default type indicator written for kind.
func TypeFor(kind Kind) uint32 {
	switch kind {
	case KindUTF8:
		return TypeUTF8
	case KindUTF16:
		return TypeUTF16
	case KindJPEG:
		return TypeJPEG
	case KindPNG:
		return TypePNG
	case KindBMP:
		return TypeBMP
	case KindInt:
		return TypeBESigned
	case KindUint:
		return TypeBEUnsigned
	default:
		return TypeReserved
	}
}

//nolint:gocyclo // One case per well-known type indicator
func decodePayload(typ uint32, p []byte) (Value, error) {
	switch typ {
	case TypeReserved:
		return Value{Kind: KindReserved, Type: typ, Bytes: bytes.Clone(p)}, nil

	case TypeUTF8:
		if !utf8.Valid(p) {
			return Value{}, &DecodeError{Type: typ, Reason: "invalid UTF-8"}
		}
		return Value{Kind: KindUTF8, Type: typ, Text: string(p)}, nil

	case TypeUTF16:
		if len(p)%2 != 0 {
			return Value{}, &DecodeError{Type: typ, Reason: fmt.Sprintf("odd UTF-16 length %d", len(p))}
		}
		text, err := utf16BE.NewDecoder().Bytes(p)
		if err != nil {
			return Value{}, &DecodeError{Type: typ, Reason: err.Error()}
		}
		return Value{Kind: KindUTF16, Type: typ, Text: string(text)}, nil

	case TypeJPEG:
		return Value{Kind: KindJPEG, Type: typ, Bytes: bytes.Clone(p)}, nil
	case TypePNG:
		return Value{Kind: KindPNG, Type: typ, Bytes: bytes.Clone(p)}, nil
	case TypeBMP:
		return Value{Kind: KindBMP, Type: typ, Bytes: bytes.Clone(p)}, nil

	case TypeBESigned, TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		if err := checkWidth(typ, len(p)); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt, Type: typ, Int: signExtend(p), Width: len(p)}, nil

	case TypeBEUnsigned, TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		if err := checkWidth(typ, len(p)); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindUint, Type: typ, Uint: unsigned(p), Width: len(p)}, nil

	default:
		return Value{}, &UnknownTypeCodeError{Code: typ}
	}
}

// fixedWidth returns the width mandated by a sized integer type, or 0.
func fixedWidth(typ uint32) int {
	switch typ {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32:
		return 4
	case TypeInt64, TypeUint64:
		return 8
	default:
		return 0
	}
}

func checkWidth(typ uint32, width int) error {
	if fw := fixedWidth(typ); fw != 0 {
		if width != fw {
			return &DecodeError{Type: typ, Reason: fmt.Sprintf("integer of %d bytes, want %d", width, fw)}
		}
		return nil
	}
	switch width {
	case 1, 2, 3, 4, 8:
		return nil
	default:
		return &DecodeError{Type: typ, Reason: fmt.Sprintf("unsupported integer width %d", width)}
	}
}

func unsigned(p []byte) uint64 {
	var v uint64
	for _, b := range p {
		v = v<<8 | uint64(b)
	}
	return v
}

func signExtend(p []byte) int64 {
	v := unsigned(p)
	shift := 64 - 8*uint(len(p))
	return int64(v<<shift) >> shift
}

// EncodeTyped returns the data atom body for v: type indicator, locale, value.
func (v Value) EncodeTyped() ([]byte, error) {
	payload, err := v.EncodeRaw()
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize, HeaderSize+len(payload))
	binary.BigEndian.PutUint32(out[0:4], v.Type)
	binary.BigEndian.PutUint32(out[4:8], v.Locale)
	return append(out, payload...), nil
}

// EncodeRaw returns the value bytes of v without the data atom header.
func (v Value) EncodeRaw() ([]byte, error) {
	switch v.Kind {
	case KindUnparsed, KindReserved, KindJPEG, KindPNG, KindBMP:
		return v.Bytes, nil
	case KindUTF8:
		return []byte(v.Text), nil
	case KindUTF16:
		b, err := utf16BE.NewEncoder().Bytes([]byte(v.Text))
		if err != nil {
			return nil, &EncodeError{Kind: v.Kind, Reason: err.Error()}
		}
		return b, nil
	case KindInt:
		width, err := v.intWidth(fitsSigned(v.Int))
		if err != nil {
			return nil, err
		}
		return putUint(uint64(v.Int), width), nil
	case KindUint:
		width, err := v.intWidth(fitsUnsigned(v.Uint))
		if err != nil {
			return nil, err
		}
		return putUint(v.Uint, width), nil
	default:
		return nil, &EncodeError{Kind: v.Kind, Reason: "unknown kind"}
	}
}

// intWidth resolves the encoded width of an integer value. A zero Width
// selects the smallest of 1, 2, 4 and 8 bytes that holds the value.
func (v Value) intWidth(fits func(int) bool) (int, error) {
	width := v.Width
	if fw := fixedWidth(v.Type); fw != 0 {
		if width != 0 && width != fw {
			return 0, &EncodeError{Kind: v.Kind, Reason: fmt.Sprintf("width %d conflicts with type %d", width, v.Type)}
		}
		width = fw
	}
	if width == 0 {
		for _, w := range []int{1, 2, 4, 8} {
			if fits(w) {
				return w, nil
			}
		}
	}
	switch width {
	case 1, 2, 3, 4, 8:
	default:
		return 0, &EncodeError{Kind: v.Kind, Reason: fmt.Sprintf("unsupported integer width %d", width)}
	}
	if !fits(width) {
		return 0, &EncodeError{Kind: v.Kind, Reason: fmt.Sprintf("value does not fit in %d bytes", width)}
	}
	return width, nil
}

func fitsSigned(n int64) func(int) bool {
	return func(width int) bool {
		if width >= 8 {
			return true
		}
		limit := int64(1) << (8*uint(width) - 1)
		return n >= -limit && n < limit
	}
}

func fitsUnsigned(n uint64) func(int) bool {
	return func(width int) bool {
		if width >= 8 {
			return true
		}
		return n < uint64(1)<<(8*uint(width))
	}
}

func putUint(v uint64, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}
