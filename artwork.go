package mp4meta

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG config decoder
	_ "image/png"  // Register PNG config decoder

	_ "golang.org/x/image/bmp" // Register BMP config decoder

	"github.com/simonhull/mp4meta/internal/atom"
	"github.com/simonhull/mp4meta/internal/data"
	"github.com/simonhull/mp4meta/internal/types"
)

// Artwork is an alias to types.Artwork.
// Re-exporting from internal/types to maintain public API.
type Artwork = types.Artwork

// MIME types of the image formats the covr item can hold.
const (
	MIMETypeJPEG = "image/jpeg"
	MIMETypePNG  = "image/png"
	MIMETypeBMP  = "image/bmp"
)

// NewArtwork detects the format and dimensions of an image.
//
// Only JPEG, PNG and BMP can be stored in the covr item; other formats
// return an error.
func NewArtwork(b []byte) (Artwork, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return Artwork{}, fmt.Errorf("decode image header: %w", err)
	}
	art := Artwork{Data: b, Width: cfg.Width, Height: cfg.Height}
	switch format {
	case "jpeg":
		art.MIMEType = MIMETypeJPEG
	case "png":
		art.MIMEType = MIMETypePNG
	case "bmp":
		art.MIMEType = MIMETypeBMP
	default:
		return Artwork{}, fmt.Errorf("unsupported image format %q", format)
	}
	return art, nil
}

// artworkOf converts an image value, filling the dimensions when the image
// header decodes.
func artworkOf(v data.Value) Artwork {
	art := Artwork{MIMEType: v.MIMEType(), Data: v.Bytes}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(v.Bytes)); err == nil {
		art.Width, art.Height = cfg.Width, cfg.Height
	}
	return art
}

// Artwork returns the image in the covr item.
func (t *Tag) Artwork() (Artwork, bool) {
	v, ok := t.Value(atom.FourccIdent(atom.Artwork))
	if !ok || !v.IsImage() {
		return Artwork{}, false
	}
	return artworkOf(v), true
}

// SetArtwork stores art in the covr item. The MIME type selects the data
// type; when it is empty the format is detected from the image bytes.
func (t *Tag) SetArtwork(art Artwork) error {
	mime := art.MIMEType
	if mime == "" {
		detected, err := NewArtwork(art.Data)
		if err != nil {
			return err
		}
		mime = detected.MIMEType
	}

	var v data.Value
	switch mime {
	case MIMETypeJPEG:
		v = data.JPEG(art.Data)
	case MIMETypePNG:
		v = data.PNG(art.Data)
	case MIMETypeBMP:
		v = data.BMP(art.Data)
	default:
		return fmt.Errorf("unsupported artwork MIME type %q", mime)
	}
	t.Set(atom.FourccIdent(atom.Artwork), v)
	return nil
}

// RemoveArtwork removes the covr item.
func (t *Tag) RemoveArtwork() {
	t.Remove(atom.FourccIdent(atom.Artwork))
}
