package process

import (
	"context"
	"strings"
)

// Call records a single invocation of MockRunner.
type Call struct {
	Name string
	Args []string
}

// String returns the command line of the call.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// MockRunner is a test double for ExecRunner.
// Handler decides the result of each call; when nil, Outcome and Error are returned.
type MockRunner struct {
	Outcome Outcome
	Error   error
	Handler func(name string, args []string) (Outcome, error)

	Calls []Call
}

// NewMockRunner creates a MockRunner that always returns the given outcome and error.
func NewMockRunner(outcome Outcome, err error) *MockRunner {
	return &MockRunner{Outcome: outcome, Error: err}
}

// Run records the call and returns the canned result.
func (m *MockRunner) Run(_ context.Context, name string, args ...string) (Outcome, error) {
	m.Calls = append(m.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	if m.Handler != nil {
		return m.Handler(name, args)
	}
	if m.Error != nil {
		return Outcome{ExitCode: -1}, m.Error
	}
	return m.Outcome, nil
}

// Compile-time interface conformance check.
var _ Runner = (*MockRunner)(nil)
