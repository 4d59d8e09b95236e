package checkout

import "errors"

var (
	// ErrSubmitInFlight means a submit arrived while one was already
	// running; the duplicate is ignored, no second order is created.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrSubmissionDone means the pipeline reached its terminal success
	// state; this form instance cannot submit again.
	ErrSubmissionDone = errors.New("order already placed")
)

// GenericFailureMessage is the fallback shown when the backend gave no
// usable reason.
const GenericFailureMessage = "Failed to create order. Please try again."

// ValidationError is a user-correctable form problem. It never reaches
// the network; Reason is the exact text the shopper sees.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}
