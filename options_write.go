package mp4meta

// SaveOption configures Save and SaveAs.
//
//	err := tag.Save(
//	    mp4meta.WithBackup(".bak"),
//	    mp4meta.WithValidation(),
//	)
type SaveOption func(*saveOptions)

type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep the output's modification time
}

func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup keeps the file being replaced under its name plus suffix.
// WithBackup(".bak") moves "song.m4a" to "song.m4a.bak" before the new file
// is renamed into place. An existing backup is overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the written file and compares every item of the
// tag against it. A mismatch is returned as an error; the written file is
// kept.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime restores the modification time the output file had
// before the save.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
