// Package version extracts the version declared in a cookbook-style metadata file.
//
// Only lines of the form `version '1.2.3'` or `version 1.2.3`, surrounded by
// newlines, are recognised. The token is returned as opaque text and compared
// by exact string equality; no semantic ordering is applied.
package version

import (
	"errors"
	"regexp"
)

// ErrNotFound is returned when no version line is present.
var ErrNotFound = errors.New("not found")

// versionLine requires a newline on both sides, so a declaration on the very
// first line of a file is not matched.
var versionLine = regexp.MustCompile(`\nversion\s+'?(\d+\.\d+\.\d+)'?\n`)

// anyVersionLine is looser and only used to count declarations.
var anyVersionLine = regexp.MustCompile(`(?m)^version[ \t]+'?\d+\.\d+\.\d+'?\r?$`)

// Extract returns the first version token declared in contents.
// Later declarations are ignored even when they disagree with the first.
func Extract(contents string) (string, error) {
	m := versionLine.FindStringSubmatch(contents)
	if m == nil {
		return "", ErrNotFound
	}
	return m[1], nil
}

// CountMatches returns the number of version declaration lines in contents.
func CountMatches(contents string) int {
	return len(anyVersionLine.FindAllStringIndex(contents, -1))
}
