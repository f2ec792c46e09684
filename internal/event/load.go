package event

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a workflow event document and validates its pull_request field.
func Load(r io.Reader) (*PullRequest, error) {
	var doc map[string]any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode event payload: %w", err)
	}
	return Validate(doc["pull_request"])
}

// LoadFile reads the event document at path.
func LoadFile(path string) (*PullRequest, error) {
	if path == "" {
		return nil, fmt.Errorf("event payload path is empty")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event payload: %w", err)
	}
	defer f.Close()
	return Load(f)
}
