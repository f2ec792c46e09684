package git

import "context"

// MockRetriever is a test double for ContentRetriever.
// It serves contents keyed by "revision:path" and records every lookup.
type MockRetriever struct {
	Files map[string]string
	Error error

	Lookups []string
}

// NewMockRetriever creates a new MockRetriever with the given files and error.
func NewMockRetriever(files map[string]string, err error) *MockRetriever {
	return &MockRetriever{Files: files, Error: err}
}

// FileContents returns the predefined contents, or a process failure when the key is unknown.
func (m *MockRetriever) FileContents(_ context.Context, path, revision string) (string, error) {
	key := revision + ":" + path
	m.Lookups = append(m.Lookups, key)
	if m.Error != nil {
		return "", m.Error
	}
	contents, ok := m.Files[key]
	if !ok {
		return "", processFailed("fatal: invalid object name '"+revision+"'.\n", exitFatal)
	}
	return contents, nil
}
