package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Outcome captures everything a finished command produced.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with status zero.
func (o Outcome) Success() bool {
	return o.ExitCode == 0
}

// Runner defines the interface for running external commands.
// A non-zero exit status is reported through Outcome, not as an error.
// The error is reserved for commands that could not be run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Outcome, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// NewExecRunner creates a runner that executes commands in dir.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run executes the command and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Outcome, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return Outcome{ExitCode: 0, Stdout: stdout.String(), Stderr: stderr.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		// A signal-terminated process reports -1 here; treat it as a failed run, not a launch error.
		return Outcome{ExitCode: exitErr.ExitCode(), Stdout: stdout.String(), Stderr: stderr.String()}, nil
	}
	if ctx.Err() != nil {
		return Outcome{ExitCode: -1}, fmt.Errorf("%s: %w", name, ctx.Err())
	}
	return Outcome{ExitCode: -1}, err
}

// Compile-time interface conformance check.
var _ Runner = (*ExecRunner)(nil)
