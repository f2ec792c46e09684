package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileReader reads files from the working copy.
type FileReader interface {
	ReadFile(rel string) (string, error)
}

// Resolver turns a configured target into a single relative path.
type Resolver interface {
	Resolve(pattern string) (string, error)
}

// Files reads and resolves working copy files.
type Files interface {
	FileReader
	Resolver
}

// Workspace is the checked-out working copy of the repository.
type Workspace struct {
	Root string
	fsys fs.FS
}

// New creates a workspace rooted at root.
func New(root string) *Workspace {
	if root == "" {
		root = "."
	}
	return &Workspace{Root: root, fsys: os.DirFS(root)}
}

// ReadFile returns the contents of rel, relative to the workspace root.
func (w *Workspace) ReadFile(rel string) (string, error) {
	data, err := fs.ReadFile(w.fsys, filepath.ToSlash(rel))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", rel, err)
	}
	return string(data), nil
}

// Resolve turns the configured target into a single slash-separated relative path.
// Literal paths are returned as-is, even when the file does not exist yet.
// Glob patterns must match exactly one regular file.
func (w *Workspace) Resolve(pattern string) (string, error) {
	pattern = strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(pattern)), "./")
	if pattern == "" {
		return "", fmt.Errorf("target file is empty")
	}
	if !doublestar.ValidatePattern(pattern) {
		return "", fmt.Errorf("invalid target pattern: %s", pattern)
	}
	if !hasMeta(pattern) {
		return pattern, nil
	}

	matches, err := doublestar.Glob(w.fsys, pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", pattern, err)
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no file matches %s", pattern)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%d files match %s, expected exactly one: %s", len(matches), pattern, strings.Join(matches, ", "))
	}
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{\`)
}

// Compile-time interface conformance checks.
var (
	_ Files = (*Workspace)(nil)
	_ Files = (*MockFileReader)(nil)
)
