package mp4meta

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPath(t *testing.T, path string) *Tag {
	t.Helper()
	logger, _ := quietLogger()
	tag, err := ReadFile(path, WithLogger(logger))
	require.NoError(t, err)
	return tag
}

func TestTag_Save(t *testing.T) {
	unknown := textItem("xxxx", "kept as is")
	path := writeFixture(t, fixture{items: append(sampleItems(), unknown)}.build())

	tag := readPath(t, path)
	tag.SetTitle("New Title")
	tag.SetAlbum("Added Album")
	tag.Remove(ArtistIdent)
	require.NoError(t, tag.Save(WithValidation()))
	assert.False(t, tag.Modified())

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, samplePayload, chunkTarget(t, saved))
	assert.True(t, bytes.Contains(saved, unknown), "unknown items are copied unchanged")

	got := readPath(t, path)
	title, _ := got.Title()
	assert.Equal(t, "New Title", title)
	album, _ := got.Album()
	assert.Equal(t, "Added Album", album)
	assert.False(t, got.Has(ArtistIdent))

	isrc, _ := got.ISRC()
	assert.Equal(t, "USRC17607839", isrc)
	num, total, _ := got.TrackNumber()
	assert.Equal(t, []int{3, 12}, []int{num, total})

	// Leftover temp files mean the rename did not happen.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTag_SaveUnchanged(t *testing.T) {
	file := fixture{items: sampleItems()}.build()
	path := writeFixture(t, file)

	require.NoError(t, readPath(t, path).Save())

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, file, saved)
}

func TestTag_SaveAs(t *testing.T) {
	file := fixture{items: sampleItems()}.build()
	src := writeFixture(t, file)
	dst := filepath.Join(t.TempDir(), "copy.m4a")

	tag := readPath(t, src)
	tag.SetComment("copied")
	require.NoError(t, tag.SaveAs(dst))
	assert.True(t, tag.Modified(), "SaveAs to another file keeps the changes pending")

	original, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, file, original)

	comment, ok := readPath(t, dst).Comment()
	assert.True(t, ok)
	assert.Equal(t, "copied", comment)
}

func TestTag_SaveBackup(t *testing.T) {
	file := fixture{items: sampleItems()}.build()
	path := writeFixture(t, file)

	tag := readPath(t, path)
	tag.SetTitle("Changed")
	require.NoError(t, tag.Save(WithBackup(".bak")))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, file, backup)

	title, _ := readPath(t, path).Title()
	assert.Equal(t, "Changed", title)
}

func TestTag_SavePreserveModTime(t *testing.T) {
	path := writeFixture(t, fixture{items: sampleItems()}.build())
	old := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, old, old))

	tag := readPath(t, path)
	tag.SetTitle("Changed")
	require.NoError(t, tag.Save(WithPreserveModTime()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "mod time %s, want %s", info.ModTime(), old)
}

func TestTag_SaveWithoutSource(t *testing.T) {
	tag := readBytes(t, fixture{items: sampleItems()}.build())

	err := tag.SaveAs(filepath.Join(t.TempDir(), "out.m4a"))
	var unsupported *UnsupportedWriteError
	assert.ErrorAs(t, err, &unsupported)
}

func TestTag_SaveFailureKeepsOriginal(t *testing.T) {
	file := fixture{items: sampleItems()}.build()
	path := writeFixture(t, file)

	tag := readPath(t, path)
	tag.SetTitle("Changed")
	// Replace the source with something that has no movie atom.
	require.NoError(t, os.WriteFile(path, file[:24], 0o644))

	err := tag.Save()
	var notFound *AtomNotFoundError
	require.ErrorAs(t, err, &notFound)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file is removed")
	assert.True(t, tag.Modified())
}
