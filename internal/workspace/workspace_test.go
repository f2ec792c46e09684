package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
}

func TestWorkspace_ReadFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"metadata.rb": "name 'demo'\r\nversion '1.0.0'\n"})

	w := New(root)
	got, err := w.ReadFile("metadata.rb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "name 'demo'\r\nversion '1.0.0'\n" {
		t.Errorf("ReadFile = %q", got)
	}

	_, err = w.ReadFile("missing.rb")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestWorkspace_Resolve(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"metadata.rb":                    "",
		"cookbooks/web/metadata.rb":      "",
		"cookbooks/web/recipes/a.rb":     "",
		"cookbooks/db/metadata.rb":       "",
		"site/cookbooks/app/metadata.rb": "",
	})
	w := New(root)

	tests := []struct {
		name        string
		pattern     string
		want        string
		errContains string
	}{
		{name: "literal", pattern: "metadata.rb", want: "metadata.rb"},
		{name: "literal with dot prefix", pattern: "./metadata.rb", want: "metadata.rb"},
		{name: "literal missing file", pattern: "other.rb", want: "other.rb"},
		{name: "single match", pattern: "site/**/metadata.rb", want: "site/cookbooks/app/metadata.rb"},
		{name: "brace match", pattern: "cookbooks/{web,none}/metadata.rb", want: "cookbooks/web/metadata.rb"},
		{name: "ambiguous", pattern: "cookbooks/*/metadata.rb", errContains: "2 files match"},
		{name: "no match", pattern: "nothing/*/metadata.rb", errContains: "no file matches"},
		{name: "empty", pattern: "  ", errContains: "target file is empty"},
		{name: "invalid", pattern: "cookbooks/[web/metadata.rb", errContains: "invalid target pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.Resolve(tt.pattern)
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("Resolve(%q) error = %v, expected to contain %q", tt.pattern, err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, expected %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMockFileReader(t *testing.T) {
	m := NewMockFileReader(map[string]string{"metadata.rb": "x"})

	if got, err := m.ReadFile("metadata.rb"); err != nil || got != "x" {
		t.Fatalf("ReadFile = %q, %v", got, err)
	}
	if _, err := m.ReadFile("missing.rb"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if len(m.Reads) != 2 {
		t.Errorf("Reads = %v, expected 2 entries", m.Reads)
	}
}

func TestMockFileReader_Resolve(t *testing.T) {
	m := NewMockFileReader(nil)
	m.Matches = map[string]string{"*/metadata.rb": "web/metadata.rb"}

	if got, err := m.Resolve("*/metadata.rb"); err != nil || got != "web/metadata.rb" {
		t.Errorf("Resolve(glob) = %q, %v", got, err)
	}
	if got, err := m.Resolve("metadata.rb"); err != nil || got != "metadata.rb" {
		t.Errorf("Resolve(literal) = %q, %v", got, err)
	}

	m.ResolveError = errors.New("no file matches x")
	if _, err := m.Resolve("x"); err == nil {
		t.Error("expected ResolveError to be returned")
	}
	if len(m.Resolves) != 3 {
		t.Errorf("Resolves = %v, expected 3 entries", m.Resolves)
	}
}
