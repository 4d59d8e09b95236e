package domain

type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "IDLE"
	SubmissionSubmitting SubmissionState = "SUBMITTING"
	SubmissionSucceeded  SubmissionState = "SUCCEEDED"
	SubmissionFailed     SubmissionState = "FAILED"
)

// IsTerminal reports whether no further submission is possible. Failed is
// not terminal: retrying is just submitting again.
func (s SubmissionState) IsTerminal() bool {
	return s == SubmissionSucceeded
}

// String representation (for logging)
func (s SubmissionState) String() string {
	return string(s)
}

// CanTransition encodes the legal submission transitions. Everything else
// is rejected, in particular Submitting -> Submitting, which is how
// duplicate submits are kept from creating duplicate orders.
func CanTransition(from, to SubmissionState) bool {
	switch from {
	case SubmissionIdle, SubmissionFailed:
		return to == SubmissionSubmitting
	case SubmissionSubmitting:
		return to == SubmissionSucceeded || to == SubmissionFailed
	default:
		return false
	}
}
