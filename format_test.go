package mp4meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFileType(t *testing.T) {
	file := fixture{brand: "M4P ", items: sampleItems()}.build()
	logger, _ := quietLogger()
	path := writeFixture(t, file)

	_, err := ReadFile(path, WithLogger(logger))
	require.ErrorIs(t, err, ErrNoTag)

	RegisterFileType("M4P ", FormatM4P)
	t.Cleanup(func() { UnregisterFileType("M4P ") })
	assert.Contains(t, FileTypes(), "M4P ")

	tag, err := ReadFile(path, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, FormatM4P, tag.Format)
	assert.Equal(t, "M4P ", tag.Brand)

	assert.True(t, UnregisterFileType("M4P "))
	assert.False(t, UnregisterFileType("M4P "))
	assert.NotContains(t, FileTypes(), "M4P ")
}

func TestDefaultFileTypes(t *testing.T) {
	assert.Equal(t, []string{"M4A ", "M4B "}, FileTypes())
	assert.Equal(t, "M4B", FormatM4B.String())
	assert.Equal(t, []string{".m4b"}, FormatM4B.Extensions())
}
