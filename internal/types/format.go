package types

// Format represents the MPEG-4 flavour named by a file's ftyp brand.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file type.
	FormatUnknown Format = iota
	// FormatM4A represents M4A audio files.
	FormatM4A
	// FormatM4B represents M4B audiobook files.
	FormatM4B
	// FormatM4P represents protected M4P audio files.
	FormatM4P
	// FormatM4V represents M4V video files.
	FormatM4V
	// FormatMP4 represents generic MP4 files.
	FormatMP4
)

// String returns the short name of the format.
func (f Format) String() string {
	switch f {
	case FormatM4A:
		return "M4A"
	case FormatM4B:
		return "M4B"
	case FormatM4P:
		return "M4P"
	case FormatM4V:
		return "M4V"
	case FormatMP4:
		return "MP4"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatM4A:
		return []string{".m4a"}
	case FormatM4B:
		return []string{".m4b"}
	case FormatM4P:
		return []string{".m4p"}
	case FormatM4V:
		return []string{".m4v"}
	case FormatMP4:
		return []string{".mp4"}
	default:
		return nil
	}
}
