package mp4meta

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/mp4meta/internal/data"
)

const samplePayload = "SAMPLEDATA"

func box(fourcc string, body ...[]byte) []byte {
	content := bytes.Join(body, nil)
	out := binary.BigEndian.AppendUint32(nil, uint32(8+len(content)))
	out = append(out, fourcc...)
	return append(out, content...)
}

func fullBox(fourcc string, body ...[]byte) []byte {
	return box(fourcc, append([][]byte{{0, 0, 0, 0}}, body...)...)
}

func dataBox(typ uint32, value []byte) []byte {
	head := binary.BigEndian.AppendUint32(nil, typ)
	return box("data", head, []byte{0, 0, 0, 0}, value)
}

func textItem(fourcc, text string) []byte {
	return box(fourcc, dataBox(data.TypeUTF8, []byte(text)))
}

func freeformItem(mean, name, text string) []byte {
	return box("----",
		fullBox("mean", []byte(mean)),
		fullBox("name", []byte(name)),
		dataBox(data.TypeUTF8, []byte(text)),
	)
}

// fixture describes a synthetic M4A file with one audio chunk.
type fixture struct {
	brand string
	items [][]byte // nil leaves moov without udta
}

// build returns the file bytes. The single stco entry points at
// samplePayload inside the mdat that follows moov.
func (f fixture) build() []byte {
	brand := f.brand
	if brand == "" {
		brand = "M4A "
	}
	ftyp := box("ftyp", []byte(brand), []byte{0, 0, 0, 0}, []byte(brand), []byte("isom"))

	moovFor := func(chunk uint32) []byte {
		trak := box("trak",
			box("tkhd", make([]byte, 84)),
			box("mdia", box("minf", box("stbl",
				box("stsd", make([]byte, 8)),
				box("stco", []byte{0, 0, 0, 0}, binary.BigEndian.AppendUint32(nil, 1), binary.BigEndian.AppendUint32(nil, chunk)),
			))),
		)
		parts := [][]byte{box("mvhd", make([]byte, 100)), trak}
		if f.items != nil {
			hdlr := fullBox("hdlr", []byte{0, 0, 0, 0}, []byte("mdir"), []byte("appl"), make([]byte, 9))
			parts = append(parts, box("udta", fullBox("meta", hdlr, box("ilst", f.items...))))
		}
		return box("moov", parts...)
	}

	chunk := uint32(len(ftyp) + len(moovFor(0)) + 8)
	return bytes.Join([][]byte{ftyp, moovFor(chunk), box("mdat", []byte(samplePayload))}, nil)
}

// chunkTarget returns the bytes the first stco entry points at.
func chunkTarget(t *testing.T, file []byte) string {
	t.Helper()
	i := bytes.Index(file, []byte("stco"))
	require.GreaterOrEqual(t, i, 0)
	off := int(binary.BigEndian.Uint32(file[i+12:]))
	require.LessOrEqual(t, off+len(samplePayload), len(file))
	return string(file[off : off+len(samplePayload)])
}

func writeFixture(t testing.TB, file []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "song.m4a")
	require.NoError(t, os.WriteFile(path, file, 0o644))
	return path
}

func quietLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	return logger, hook
}

func readBytes(t *testing.T, file []byte, opts ...Option) *Tag {
	t.Helper()
	logger, _ := quietLogger()
	tag, err := ReadFrom(bytes.NewReader(file), append([]Option{WithLogger(logger)}, opts...)...)
	require.NoError(t, err)
	return tag
}
