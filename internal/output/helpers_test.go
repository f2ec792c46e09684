package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masmgr/versioncheck/internal/check"
)

func passedReport() *CheckReport {
	return &CheckReport{
		RepoPath:    "/work/repo",
		EventName:   "pull_request",
		Backend:     "cli",
		GeneratedAt: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
		Result: check.Result{
			TargetFile:           "metadata.rb",
			DefaultBranch:        "main",
			DefaultBranchVersion: "1.0.0",
			CurrentVersion:       "1.0.0",
			Matched:              true,
		},
	}
}

func failedReport() *CheckReport {
	r := passedReport()
	r.Result.CurrentVersion = "1.0.1"
	r.Result.Matched = false
	r.Failure = &check.Failure{
		Kind:    check.FailureVersionMismatch,
		Message: "Version number in metadata.rb: 1.0.1 does not match default branch version number: 1.0.0",
	}
	return r
}

// writeToTemp runs the writer against a temp file and returns its contents.
func writeToTemp(t *testing.T, w CheckReportWriter, report *CheckReport) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report")
	if err := w.Write(report, OutputOptions{OutputPath: path}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(data)
}
