package types

import (
	"slices"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatM4A, "M4A"},
		{FormatM4B, "M4B"},
		{FormatM4P, "M4P"},
		{FormatM4V, "M4V"},
		{FormatMP4, "MP4"},
		{FormatUnknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.format.String(); got != tc.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tc.format), got, tc.want)
		}
	}
}

func TestFormat_Extensions(t *testing.T) {
	tests := []struct {
		format Format
		want   []string
	}{
		{FormatM4A, []string{".m4a"}},
		{FormatM4B, []string{".m4b"}},
		{FormatM4P, []string{".m4p"}},
		{FormatM4V, []string{".m4v"}},
		{FormatMP4, []string{".mp4"}},
		{FormatUnknown, nil},
	}

	for _, tc := range tests {
		got := tc.format.Extensions()
		if !slices.Equal(got, tc.want) {
			t.Errorf("%v.Extensions() = %v, want %v", tc.format, got, tc.want)
		}
	}
}
