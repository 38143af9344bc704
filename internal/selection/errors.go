package selection

import (
	"errors"

	"github.com/winterarc/winterarc/internal/notify"
)

var (
	ErrMissingWorkoutType     = errors.New("missing workout type")
	ErrMissingMuscleSelection = errors.New("missing muscle selection")
	ErrMissingGoal            = errors.New("missing goal")
	ErrMaxMusclesExceeded     = errors.New("max muscle groups exceeded")
)

// userMessages maps each validation error to the text shown to the user.
var userMessages = map[error]string{
	ErrMissingWorkoutType:     "Please select a workout type",
	ErrMissingMuscleSelection: "Please select at least one muscle group",
	ErrMissingGoal:            "Please select a training goal",
	ErrMaxMusclesExceeded:     "Maximum 3 muscle groups allowed",
}

// ValidationError is a user-recoverable rejection of an intent. The state
// machine is left unchanged whenever one is returned.
type ValidationError struct {
	Kind notify.Kind
	Err  error
}

func newValidationError(kind notify.Kind, err error) *ValidationError {
	return &ValidationError{Kind: kind, Err: err}
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Message returns the text shown to the user.
func (e *ValidationError) Message() string {
	if msg, ok := userMessages[e.Err]; ok {
		return msg
	}
	return e.Err.Error()
}
