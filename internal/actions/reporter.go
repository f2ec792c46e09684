package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Reporter receives step outputs and the failure message of a run.
type Reporter interface {
	SetOutput(name, value string) error
	SetFailed(message string)
	Failed() bool
}

// ActionsReporter reports through GitHub Actions workflow commands and files.
type ActionsReporter struct {
	outputPath string
	stdout     io.Writer
	failures   []string
	newID      func() string
}

// NewActionsReporter creates a reporter that appends outputs to outputPath.
// When outputPath is empty, outputs are written as ::set-output commands to stdout.
func NewActionsReporter(outputPath string, stdout io.Writer) *ActionsReporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &ActionsReporter{outputPath: outputPath, stdout: stdout, newID: uuid.NewString}
}

// SetOutput records a named step output.
func (r *ActionsReporter) SetOutput(name, value string) error {
	if r.outputPath == "" {
		_, err := fmt.Fprintf(r.stdout, "::set-output name=%s::%s\n", escapeProperty(name), escapeData(value))
		return err
	}

	f, err := os.OpenFile(r.outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, r.formatOutput(name, value)); err != nil {
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	return nil
}

func (r *ActionsReporter) formatOutput(name, value string) string {
	if !strings.ContainsAny(value, "\r\n") {
		return name + "=" + value + "\n"
	}
	delimiter := "ghadelimiter_" + r.newID()
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
}

// SetFailed emits an error annotation and marks the run as failed.
func (r *ActionsReporter) SetFailed(message string) {
	r.failures = append(r.failures, message)
	fmt.Fprintf(r.stdout, "::error::%s\n", escapeData(message))
}

// Failed returns true if SetFailed has been called.
func (r *ActionsReporter) Failed() bool {
	return len(r.failures) > 0
}

// Failures returns the reported failure messages in order.
func (r *ActionsReporter) Failures() []string {
	return append([]string(nil), r.failures...)
}

func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	return strings.ReplaceAll(s, ",", "%2C")
}

// Compile-time interface conformance checks.
var (
	_ Reporter = (*ActionsReporter)(nil)
	_ Reporter = (*MemoryReporter)(nil)
)
