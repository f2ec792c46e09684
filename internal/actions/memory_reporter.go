package actions

// MemoryReporter is a test double for ActionsReporter that keeps everything in memory.
type MemoryReporter struct {
	Outputs  map[string]string
	Order    []string
	Failures []string
	Error    error
}

// NewMemoryReporter creates an empty MemoryReporter.
func NewMemoryReporter() *MemoryReporter {
	return &MemoryReporter{Outputs: make(map[string]string)}
}

// SetOutput stores the output, or returns the configured error.
func (m *MemoryReporter) SetOutput(name, value string) error {
	if m.Error != nil {
		return m.Error
	}
	m.Outputs[name] = value
	m.Order = append(m.Order, name)
	return nil
}

// SetFailed records the failure message.
func (m *MemoryReporter) SetFailed(message string) {
	m.Failures = append(m.Failures, message)
}

// Failed returns true if SetFailed has been called.
func (m *MemoryReporter) Failed() bool {
	return len(m.Failures) > 0
}
