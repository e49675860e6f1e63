package mp4meta

import (
	"github.com/simonhull/mp4meta/internal/data"
	"github.com/simonhull/mp4meta/internal/types"
)

// Sentinel errors for use with errors.Is.
var (
	ErrAtomNotFound   = types.ErrAtomNotFound
	ErrNoTag          = types.ErrNoTag
	ErrBoundsExceeded = types.ErrBoundsExceeded
)

// AtomNotFoundError is an alias to types.AtomNotFoundError.
// Re-exporting from internal/types to maintain public API.
type AtomNotFoundError = types.AtomNotFoundError

// NoTagError is an alias to types.NoTagError.
type NoTagError = types.NoTagError

// InvalidIdentLengthError is an alias to types.InvalidIdentLengthError.
type InvalidIdentLengthError = types.InvalidIdentLengthError

// BoundsExceededError is an alias to types.BoundsExceededError.
type BoundsExceededError = types.BoundsExceededError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// CorruptedFileError is an alias to types.CorruptedFileError.
type CorruptedFileError = types.CorruptedFileError

// UnsupportedWriteError is an alias to types.UnsupportedWriteError.
type UnsupportedWriteError = types.UnsupportedWriteError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// DecodeError is returned when a data atom's bytes do not decode for its
// type code.
type DecodeError = data.DecodeError

// EncodeError is returned when a value cannot be encoded, for example an
// integer too large for its width.
type EncodeError = data.EncodeError

// UnknownTypeCodeError reports a data atom with a type code outside the
// well-known set. Such values are kept as raw bytes.
type UnknownTypeCodeError = data.UnknownTypeCodeError
