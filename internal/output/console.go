package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleCheckWriter writes check reports to the console.
type ConsoleCheckWriter struct{}

// Write outputs the check report to the console.
func (w *ConsoleCheckWriter) Write(report *CheckReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	title := color.New(color.FgGreen).Add(color.Underline)
	title.Fprintln(out, "Version Check Results")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "File: %s\n\n", report.Result.TargetFile)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Default branch\tDefault branch version\tCurrent version")
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		valueOrDash(report.Result.DefaultBranch),
		valueOrDash(report.Result.DefaultBranchVersion),
		valueOrDash(report.Result.CurrentVersion),
	)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if report.Passed() {
		color.New(color.FgGreen).Fprintln(out, "PASS: version matches the default branch")
		return nil
	}
	color.New(color.FgRed).Fprintf(out, "FAIL: %s\n", failureMessage(report))
	return nil
}

func failureMessage(report *CheckReport) string {
	if report.Failure == nil {
		return "versions do not match"
	}
	return report.Failure.Message
}
