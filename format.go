package mp4meta

import (
	"github.com/simonhull/mp4meta/internal/registry"
	"github.com/simonhull/mp4meta/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatM4A     = types.FormatM4A
	FormatM4B     = types.FormatM4B
	FormatM4P     = types.FormatM4P
	FormatM4V     = types.FormatM4V
	FormatMP4     = types.FormatMP4
)

// RegisterFileType accepts files whose ftyp text starts with brand.
//
// Only "M4A " and "M4B " are accepted by default. Registering an existing
// brand replaces its format:
//
//	mp4meta.RegisterFileType("M4P ", mp4meta.FormatM4P)
func RegisterFileType(brand string, format Format) {
	registry.Register(brand, format)
}

// UnregisterFileType stops accepting brand. It reports whether the brand
// was registered.
func UnregisterFileType(brand string) bool {
	return registry.Unregister(brand)
}

// FileTypes returns the accepted brands in match order.
func FileTypes() []string {
	return registry.Brands()
}
