package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{"unset", "none", "none"},
		{"full sha", "3f2c9e1d8b7a6c5d4e3f2a1b0c9d8e7f6a5b4c3d", "3f2c9e1"},
		{"already short", "3f2c9e1", "3f2c9e1"},
	}

	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = "v1.2.3", tt.commit, "2026-01-02T03:04:05Z"
			got := Get()
			if got.Version != "v1.2.3" || got.Commit != tt.want || got.Date != "2026-01-02T03:04:05Z" {
				t.Errorf("Get() = %+v, want commit %q", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)
	Version, Commit = "v0.4.0", "abcdef0123456"

	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v0.4.0\n") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(tmpl, "commit: abcdef0\n") {
		t.Errorf("Template() should abbreviate the commit: %q", tmpl)
	}
}
