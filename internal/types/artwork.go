package types

import "fmt"

// Artwork represents an image stored in the covr item.
type Artwork struct {
	// MIME type of the image data
	MIMEType string // "image/jpeg", "image/png", "image/bmp"

	// Image binary data
	Data []byte

	// Dimensions (decoded from the image header, otherwise 0)
	Width  int // Pixels
	Height int // Pixels
}

// String returns a human-readable description of the artwork.
//
// Example output: "Artwork (1200x1200 JPEG, 245KB)"
func (a Artwork) String() string {
	dims := ""
	if a.Width > 0 && a.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", a.Width, a.Height)
	}

	return fmt.Sprintf("Artwork (%s%s, %s)", dims, mimeToFormat(a.MIMEType), formatSize(len(a.Data)))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/bmp":
		return "BMP"
	default:
		return "Image"
	}
}
