package mp4meta

import (
	"github.com/sirupsen/logrus"

	"github.com/simonhull/mp4meta/internal/atom"
)

// Option configures behavior when reading tags.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := mp4meta.ReadFile("song.m4a",
//	    mp4meta.WithStrictParsing(),
//	    mp4meta.WithMaxDataSize(16<<20),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading tags.
type readOptions struct {
	logger         logrus.FieldLogger
	strictParsing  bool    // Fail on any warning
	ignoreWarnings bool    // Suppress all warnings
	maxDataSize    int64   // Maximum data atom payload in bytes (0 = no limit)
	items          []Ident // Additional items to read
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		logger: atom.DiscardLogger(),
	}
}

// WithLogger sets the logger used while reading and saving the tag.
//
// By default nothing is logged. Atom matches are logged at
// Trace and Debug, values that fail to decode at Warn.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *readOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, mp4meta continues parsing when it encounters issues like
// undecodable text or oversized artwork, returning warnings alongside the
// parsed data.
//
// Example:
//
//	tag, err := mp4meta.ReadFile("song.m4a", mp4meta.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *readOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Tag.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *readOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxDataSize skips data atoms whose payload exceeds n bytes, with a
// warning. This protects against excessively large embedded images.
//
// Default is 0 (no limit).
func WithMaxDataSize(n int64) Option {
	return func(o *readOptions) {
		o.maxDataSize = n
	}
}

// WithItems reads the given items in addition to the known set, such as
// freeform items written by other taggers:
//
//	tag, err := mp4meta.ReadFile(path,
//	    mp4meta.WithItems(mp4meta.FreeformIdent("com.apple.iTunes", "MusicBrainz Track Id")),
//	)
func WithItems(ids ...Ident) Option {
	return func(o *readOptions) {
		o.items = append(o.items, ids...)
	}
}

func (o *readOptions) itemList() []Ident {
	if len(o.items) == 0 {
		return KnownItems()
	}
	return append(KnownItems(), o.items...)
}
