package mp4meta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/simonhull/mp4meta/internal/m4a"
)

// Save writes modified metadata back to the file the tag was read from.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the original path. If any step fails, the original file remains unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := tag.Save(
//	    mp4meta.WithBackup(".bak"),
//	    mp4meta.WithValidation(),
//	)
func (t *Tag) Save(opts ...SaveOption) error {
	if err := t.SaveAs(t.Path, opts...); err != nil {
		return err
	}
	clear(t.changed)
	return nil
}

// SaveAs writes the source file with the tag's metadata to outputPath.
//
// The source is the file the tag was read from; it is left untouched unless
// outputPath names it. The output is written to a temporary file in the
// same directory and renamed into place.
func (t *Tag) SaveAs(outputPath string, opts ...SaveOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if t.Path == "" {
		return &UnsupportedWriteError{Reason: "tag has no source file, use Write"}
	}

	// Get original file's mod time if we need to preserve it
	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(outputPath); err == nil {
			origInfo = info
		}
	}

	// Create temp file in same directory as output (for atomic rename)
	tempFile, err := os.CreateTemp(filepath.Dir(outputPath), ".mp4meta-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if err := t.writeFromSource(tempFile); err != nil {
		return err
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	// Close temp file before rename
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Handle backup option (rename original to .bak before replace)
	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	// Atomic rename temp -> output
	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	// Mark success so defer doesn't clean up
	success = true

	if options.preserveModTime && origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	if options.validate {
		if err := t.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// writeFromSource rewrites the source file into w. The source is closed
// before returning so that it can be replaced.
func (t *Tag) writeFromSource(w io.Writer) error {
	src, err := os.Open(t.Path)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	stat, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	return t.Write(w, src, stat.Size())
}

// Write copies the MPEG-4 file in src to w with the tag's item list.
//
// Only the item list is rebuilt: items that were not changed are copied
// from src as they are, including items the tag does not know about.
// Returns an *UnsupportedWriteError for fragmented files whose movie atom
// would change size.
func (t *Tag) Write(w io.Writer, src io.ReaderAt, size int64) error {
	res, err := m4a.Rewrite(w, src, size, t.Path, m4a.Edit{
		Items:   t.ilst.Children(),
		Changed: t.isChanged,
	}, m4a.WithLogger(t.logger))
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	t.logger.WithField("path", t.Path).
		WithField("delta", res.Delta).
		WithField("created", res.Created).
		Debug("wrote tag")
	return nil
}

// validateWrittenFile re-reads the file and compares every item.
func (t *Tag) validateWrittenFile(path string) error {
	idents := make([]Ident, 0, len(t.ilst.Children()))
	for _, item := range t.ilst.Children() {
		idents = append(idents, item.Ident)
	}

	written, err := ReadFile(path, WithLogger(t.logger), WithItems(idents...))
	if err != nil {
		return fmt.Errorf("re-read: %w", err)
	}

	var errs []error
	for _, id := range idents {
		want, wantOK := t.Value(id)
		got, gotOK := written.Value(id)
		switch {
		case wantOK != gotOK:
			errs = append(errs, fmt.Errorf("item %s: present %t, want %t", id, gotOK, wantOK))
		case wantOK && !sameValue(got, want):
			errs = append(errs, fmt.Errorf("item %s: got %s, want %s", id, got, want))
		}
	}
	return errors.Join(errs...)
}

// sameValue compares two values by their encoding.
func sameValue(a, b Value) bool {
	ea, errA := a.EncodeTyped()
	eb, errB := b.EncodeTyped()
	return errA == nil && errB == nil && bytes.Equal(ea, eb)
}
