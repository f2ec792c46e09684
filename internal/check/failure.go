package check

// FailureKind classifies a terminal check failure.
type FailureKind int

const (
	FailureUnsupportedTrigger FailureKind = iota
	FailureInvalidPayload
	FailureMissingDefaultBranch
	FailureTargetFile
	FailureRetrieval
	FailureWorkingCopy
	FailureVersionNotFound
	FailureVersionMismatch
)

// String returns a string representation of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureUnsupportedTrigger:
		return "unsupported_trigger"
	case FailureInvalidPayload:
		return "invalid_payload"
	case FailureMissingDefaultBranch:
		return "missing_default_branch"
	case FailureTargetFile:
		return "target_file"
	case FailureRetrieval:
		return "retrieval"
	case FailureWorkingCopy:
		return "working_copy"
	case FailureVersionNotFound:
		return "version_not_found"
	case FailureVersionMismatch:
		return "version_mismatch"
	default:
		return "unknown"
	}
}

// Failure is the terminal error of a check run.
// Message is the text handed to the reporter.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}
