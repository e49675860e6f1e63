package mp4meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []SaveOption
		want saveOptions
	}{
		{"defaults", nil, saveOptions{}},
		{"backup", []SaveOption{WithBackup(".bak")}, saveOptions{backupSuffix: ".bak"}},
		{"validation", []SaveOption{WithValidation()}, saveOptions{validate: true}},
		{"mod time", []SaveOption{WithPreserveModTime()}, saveOptions{preserveModTime: true}},
		{
			"combined",
			[]SaveOption{WithBackup(".backup"), WithValidation(), WithPreserveModTime()},
			saveOptions{backupSuffix: ".backup", validate: true, preserveModTime: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultSaveOptions()
			for _, opt := range tt.opts {
				opt(got)
			}
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestReadOptions(t *testing.T) {
	o := defaultOptions()
	assert.NotNil(t, o.logger)
	assert.Equal(t, KnownItems(), o.itemList())

	extra := FreeformIdent("com.apple.iTunes", "MOOD")
	for _, opt := range []Option{WithStrictParsing(), WithIgnoreWarnings(), WithMaxDataSize(1024), WithItems(extra), WithLogger(nil)} {
		opt(o)
	}
	assert.True(t, o.strictParsing)
	assert.True(t, o.ignoreWarnings)
	assert.Equal(t, int64(1024), o.maxDataSize)
	assert.NotNil(t, o.logger, "nil logger keeps the default")

	items := o.itemList()
	assert.Len(t, items, len(KnownItems())+1)
	assert.Equal(t, extra, items[len(items)-1])
}
