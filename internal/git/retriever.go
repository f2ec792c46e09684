package git

import (
	"context"
	"fmt"

	"github.com/masmgr/versioncheck/internal/process"
)

// RetrievalErrorKind classifies why file contents could not be retrieved.
type RetrievalErrorKind int

const (
	// KindProcessFailed means git ran and exited with a non-zero status.
	KindProcessFailed RetrievalErrorKind = iota
	// KindProcessThrew means git could not be run at all.
	KindProcessThrew
)

// String returns a string representation of the error kind.
func (k RetrievalErrorKind) String() string {
	switch k {
	case KindProcessFailed:
		return "process_failed"
	case KindProcessThrew:
		return "process_threw"
	default:
		return "unknown"
	}
}

// RetrievalError is returned by every ContentRetriever failure.
// Code is the git exit status, or -1 when git could not be run.
type RetrievalError struct {
	Kind    RetrievalErrorKind
	Message string
	Code    int
}

func (e *RetrievalError) Error() string {
	return e.Message
}

func processFailed(detail string, code int) *RetrievalError {
	return &RetrievalError{
		Kind:    KindProcessFailed,
		Message: "Failed to get file contents: " + detail,
		Code:    code,
	}
}

func processThrew(err error) *RetrievalError {
	return &RetrievalError{
		Kind:    KindProcessThrew,
		Message: "Exception executing git command: " + err.Error(),
		Code:    -1,
	}
}

// ContentRetriever reads a file as it exists at a given revision.
// A non-nil error is always a *RetrievalError.
type ContentRetriever interface {
	FileContents(ctx context.Context, path, revision string) (string, error)
}

// CLIRetriever reads historical file contents with `git show`.
type CLIRetriever struct {
	runner process.Runner
}

// NewCLIRetriever creates a retriever that runs git through runner.
func NewCLIRetriever(runner process.Runner) *CLIRetriever {
	return &CLIRetriever{runner: runner}
}

// FileContents returns the contents of path at revision, exactly as git prints them.
func (r *CLIRetriever) FileContents(ctx context.Context, path, revision string) (string, error) {
	out, err := r.runner.Run(ctx, "git", showArgs(path, revision)...)
	if err != nil {
		return "", processThrew(err)
	}
	if out.ExitCode != 0 {
		return "", processFailed(out.Stderr, out.ExitCode)
	}
	return out.Stdout, nil
}

func showArgs(path, revision string) []string {
	return []string{"show", fmt.Sprintf("%s:%s", revision, path)}
}

// Compile-time interface conformance checks.
var (
	_ ContentRetriever = (*CLIRetriever)(nil)
	_ ContentRetriever = (*RepoRetriever)(nil)
	_ ContentRetriever = (*MockRetriever)(nil)
)
