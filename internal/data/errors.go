package data

import "fmt"

// UnknownTypeCodeError reports a type indicator the codec does not interpret.
//
// It is never fatal: the accompanying Value is KindUnparsed and round-trips
// unchanged.
type UnknownTypeCodeError struct {
	Code uint32
}

func (e *UnknownTypeCodeError) Error() string {
	return fmt.Sprintf("unknown data type code %d", e.Code)
}

// DecodeError reports a payload that does not match its known type code.
type DecodeError struct {
	Type   uint32
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode data type %d: %s", e.Type, e.Reason)
}

// EncodeError reports a value that cannot be serialised.
type EncodeError struct {
	Kind   Kind
	Reason string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s value: %s", e.Kind, e.Reason)
}
