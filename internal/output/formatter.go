package output

import (
	"time"

	"github.com/masmgr/versioncheck/internal/check"
)

// Compile-time interface conformance checks.
var (
	_ CheckReportWriter = (*ConsoleCheckWriter)(nil)
	_ CheckReportWriter = (*JSONCheckWriter)(nil)
	_ CheckReportWriter = (*MarkdownCheckWriter)(nil)
	_ CheckReportWriter = (*CICheckWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// ParseFormat maps a format name, including aliases, to an OutputFormat.
// Unknown names fall back to console.
func ParseFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "markdown", "md":
		return FormatMarkdown
	case "ci", "ndjson":
		return FormatCI
	default:
		return FormatConsole
	}
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	Append     bool // Append to OutputPath instead of truncating it
}

// CheckReport holds the outcome of a version check.
type CheckReport struct {
	RepoPath    string
	EventName   string
	Backend     string
	GeneratedAt time.Time
	Result      check.Result
	Failure     *check.Failure
}

// Passed returns true if the check succeeded.
func (r *CheckReport) Passed() bool {
	return r.Failure == nil && r.Result.Matched
}

// Status returns "pass" or "fail".
func (r *CheckReport) Status() string {
	if r.Passed() {
		return "pass"
	}
	return "fail"
}

// CheckReportWriter writes check reports.
type CheckReportWriter interface {
	Write(report *CheckReport, options OutputOptions) error
}

// NewCheckReportWriter creates a report writer for the specified format.
func NewCheckReportWriter(format OutputFormat) CheckReportWriter {
	switch format {
	case FormatJSON:
		return &JSONCheckWriter{}
	case FormatMarkdown:
		return &MarkdownCheckWriter{}
	case FormatCI:
		return &CICheckWriter{}
	default:
		return &ConsoleCheckWriter{}
	}
}
