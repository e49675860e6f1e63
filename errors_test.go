package mp4meta

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "atom not found",
			err:      &AtomNotFoundError{Path: "song.m4a", Ident: "moov", Offset: 24},
			contains: []string{"song.m4a", `"moov"`, "offset 24"},
		},
		{
			name:     "no tag",
			err:      &NoTagError{Path: "clip.mp4", Brand: "isom"},
			contains: []string{"clip.mp4", `"isom"`},
		},
		{
			name:     "bounds exceeded",
			err:      &BoundsExceededError{Path: "a.m4a", Ident: "udta", What: "length", Offset: 100, Length: 64, Remaining: 12},
			contains: []string{"a.m4a", "length", "udta", "64 bytes", "12 remain"},
		},
		{
			name:     "offset beyond file size",
			err:      &OutOfBoundsError{Path: "test.m4b", Offset: 1000, Length: 4, Size: 500, What: "ftyp atom"},
			contains: []string{"test.m4b", "offset 1000 out of bounds", "file size: 500", "ftyp atom"},
		},
		{
			name:     "read would exceed file size",
			err:      &OutOfBoundsError{Path: "audio.m4a", Offset: 100, Length: 50, Size: 120, What: "atom header"},
			contains: []string{"audio.m4a", "read of 50 bytes", "offset 100", "exceed file size 120", "atom header"},
		},
		{
			name:     "corrupted",
			err:      &CorruptedFileError{Path: "broken.m4b", Offset: 256, Reason: "invalid atom size"},
			contains: []string{"broken.m4b", "offset 256", "invalid atom size", "corrupted file"},
		},
		{
			name:     "unsupported write",
			err:      &UnsupportedWriteError{Path: "frag.m4a", Reason: "fragmented"},
			contains: []string{"frag.m4a", "write not supported", "fragmented"},
		},
		{
			name:     "invalid ident",
			err:      &InvalidIdentLengthError{Value: "abc", Length: 3},
			contains: []string{`"abc"`, "length 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		err    error
		target error
	}{
		{&AtomNotFoundError{}, ErrAtomNotFound},
		{&NoTagError{}, ErrNoTag},
		{&BoundsExceededError{}, ErrBoundsExceeded},
		{&OutOfBoundsError{}, ErrBoundsExceeded},
	}

	for _, tt := range tests {
		wrapped := fmt.Errorf("read: %w", tt.err)
		if !errors.Is(wrapped, tt.target) {
			t.Errorf("%T should match %v", tt.err, tt.target)
		}
	}

	if errors.Is(&CorruptedFileError{}, ErrBoundsExceeded) {
		t.Error("corrupted file error should not match ErrBoundsExceeded")
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Stage: "metadata", Ident: "©alb.data", Message: "invalid utf-8", Offset: 80}
	want := "metadata [©alb.data] (at offset 80): invalid utf-8"
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
