package output

import (
	"io"
	"os"
)

const reportDateTimeLayout = "2006-01-02T15:04:05Z07:00"

// valueOrDash renders unresolved values in tables.
func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func openOutputWriter(options OutputOptions) (io.Writer, *os.File, error) {
	if options.OutputPath == "" {
		return os.Stdout, nil, nil
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if options.Append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(options.OutputPath, flags, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
