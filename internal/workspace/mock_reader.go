package workspace

import (
	"fmt"
	"io/fs"
)

// MockFileReader is a test double for Workspace.
// Resolve returns the pattern unchanged unless Matches maps it or ResolveError is set.
type MockFileReader struct {
	Files        map[string]string
	Matches      map[string]string
	ResolveError error

	Reads    []string
	Resolves []string
}

// NewMockFileReader creates a new MockFileReader with the given files.
func NewMockFileReader(files map[string]string) *MockFileReader {
	return &MockFileReader{Files: files}
}

// ReadFile returns the predefined contents or fs.ErrNotExist.
func (m *MockFileReader) ReadFile(rel string) (string, error) {
	m.Reads = append(m.Reads, rel)
	contents, ok := m.Files[rel]
	if !ok {
		return "", fmt.Errorf("failed to read %s: %w", rel, fs.ErrNotExist)
	}
	return contents, nil
}

// Resolve returns the mapped path for pattern.
func (m *MockFileReader) Resolve(pattern string) (string, error) {
	m.Resolves = append(m.Resolves, pattern)
	if m.ResolveError != nil {
		return "", m.ResolveError
	}
	if rel, ok := m.Matches[pattern]; ok {
		return rel, nil
	}
	return pattern, nil
}
