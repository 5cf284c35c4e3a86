package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	orig := Commit
	t.Cleanup(func() { Commit = orig })

	tests := []struct {
		commit string
		want   string
	}{
		{"none", "none"},
		{"abcdef0", "abcdef0"},
		{"abcdef0123456789", "abcdef0"},
	}
	for _, tt := range tests {
		Commit = tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() with %q = %q, want %q", tt.commit, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q, want prefix with version %q", got, Version)
	}
}
