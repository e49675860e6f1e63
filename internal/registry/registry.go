// Package registry manages the file type brands accepted as MPEG-4 audio.
//
// A file is accepted when the text of its ftyp atom starts with a registered
// brand. "M4A " and "M4B " are registered by default; callers may add more,
// such as "mp42" or "isom", at program start.
package registry

import (
	"strings"
	"sync"

	"github.com/simonhull/mp4meta/internal/types"
)

type entry struct {
	brand  string
	format types.Format
}

var (
	mu      sync.RWMutex
	entries = []entry{
		{brand: "M4A ", format: types.FormatM4A},
		{brand: "M4B ", format: types.FormatM4B},
	}
)

// Register accepts brand as a file type of the given format.
// Registering a brand again replaces its format.
func Register(brand string, format types.Format) {
	mu.Lock()
	defer mu.Unlock()

	for i := range entries {
		if entries[i].brand == brand {
			entries[i].format = format
			return
		}
	}
	entries = append(entries, entry{brand: brand, format: format})
}

// Unregister removes brand. It reports whether the brand was registered.
func Unregister(brand string) bool {
	mu.Lock()
	defer mu.Unlock()

	for i := range entries {
		if entries[i].brand == brand {
			entries = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup returns the format of the first registered brand that prefixes
// text.
func Lookup(text string) (types.Format, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, e := range entries {
		if e.brand != "" && strings.HasPrefix(text, e.brand) {
			return e.format, true
		}
	}
	return types.FormatUnknown, false
}

// Brands returns the registered brands in registration order.
func Brands() []string {
	mu.RLock()
	defer mu.RUnlock()

	brands := make([]string, len(entries))
	for i, e := range entries {
		brands[i] = e.brand
	}
	return brands
}
