package output

import (
	"encoding/json"
)

// JSONCheckWriter writes check reports as JSON.
type JSONCheckWriter struct{}

// JSONCheckReport is the JSON output structure for a check.
type JSONCheckReport struct {
	RepoPath             string       `json:"repo"`
	EventName            string       `json:"event,omitempty"`
	Backend              string       `json:"backend,omitempty"`
	GeneratedAt          string       `json:"generatedAt"`
	File                 string       `json:"file"`
	Status               string       `json:"status"`
	DefaultBranch        string       `json:"defaultBranch,omitempty"`
	DefaultBranchVersion string       `json:"defaultBranchVersion,omitempty"`
	CurrentVersion       string       `json:"currentVersion,omitempty"`
	Failure              *JSONFailure `json:"failure,omitempty"`
}

// JSONFailure describes a failed check in JSON format.
type JSONFailure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func toJSONCheckReport(report *CheckReport) JSONCheckReport {
	out := JSONCheckReport{
		RepoPath:             report.RepoPath,
		EventName:            report.EventName,
		Backend:              report.Backend,
		GeneratedAt:          report.GeneratedAt.Format(reportDateTimeLayout),
		File:                 report.Result.TargetFile,
		Status:               report.Status(),
		DefaultBranch:        report.Result.DefaultBranch,
		DefaultBranchVersion: report.Result.DefaultBranchVersion,
		CurrentVersion:       report.Result.CurrentVersion,
	}
	if report.Failure != nil {
		out.Failure = &JSONFailure{Kind: report.Failure.Kind.String(), Message: report.Failure.Message}
	}
	return out
}

// Write outputs the check report as JSON.
func (w *JSONCheckWriter) Write(report *CheckReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toJSONCheckReport(report))
}
