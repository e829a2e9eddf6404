package util

import (
	"path/filepath"
	"testing"
)

func TestResolveFileLeavesAbsolutePathUnchanged(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "etc", "chess0go", "config.toml")
	resolved, err := ResolveFile(abs)
	if err != nil {
		t.Fatalf("ResolveFile returned an error for an absolute path: %v", err)
	}
	if resolved != abs {
		t.Fatalf("ResolveFile(%q) = %q, want unchanged", abs, resolved)
	}
}

func TestResolveFileJoinsRelativePathToExecutableDir(t *testing.T) {
	resolved, err := ResolveFile("config.toml")
	if err != nil {
		t.Fatalf("ResolveFile returned an unexpected error: %v", err)
	}
	if !filepath.IsAbs(resolved) {
		t.Fatalf("ResolveFile(%q) = %q, want an absolute path", "config.toml", resolved)
	}
	if filepath.Base(resolved) != "config.toml" {
		t.Fatalf("ResolveFile(%q) = %q, want it to end in config.toml", "config.toml", resolved)
	}
}
