package output

import (
	"fmt"
	"strings"
)

// MarkdownCheckWriter writes check reports as Markdown, suitable for a step summary.
type MarkdownCheckWriter struct{}

// Write outputs the check report as Markdown.
func (w *MarkdownCheckWriter) Write(report *CheckReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	icon := ":white_check_mark:"
	if !report.Passed() {
		icon = ":x:"
	}

	fmt.Fprintf(out, "## %s Version Check: %s\n\n", icon, strings.ToUpper(report.Status()))
	fmt.Fprintf(out, "**File:** `%s`\n\n", report.Result.TargetFile)
	fmt.Fprintln(out, "| Default branch | Default branch version | Current version |")
	fmt.Fprintln(out, "|----------------|------------------------|-----------------|")
	fmt.Fprintf(out, "| %s | %s | %s |\n\n",
		escapeMarkdownCell(valueOrDash(report.Result.DefaultBranch)),
		escapeMarkdownCell(valueOrDash(report.Result.DefaultBranchVersion)),
		escapeMarkdownCell(valueOrDash(report.Result.CurrentVersion)),
	)

	if !report.Passed() {
		fmt.Fprintf(out, "> %s\n\n", strings.ReplaceAll(failureMessage(report), "\n", " "))
	}
	return nil
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
