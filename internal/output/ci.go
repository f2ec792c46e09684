package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// CICheckWriter writes the check report as a single NDJSON line for CI pipelines.
type CICheckWriter struct{}

// Write outputs the check report as NDJSON.
func (w *CICheckWriter) Write(report *CheckReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	entry := toJSONCheckReport(report)
	return writeNDJSONLine(out, struct {
		Type string `json:"type"`
		JSONCheckReport
	}{Type: "check", JSONCheckReport: entry})
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
