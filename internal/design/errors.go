package design

import "fmt"

// InputError reports a missing or unusable request field. The CLI relies on
// it to distinguish bad input from internal failures.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid --%s: %s", e.Field, e.Reason)
}

func NewMissingInputError(field string) *InputError {
	return &InputError{
		Field:  field,
		Reason: "value is required",
	}
}

func NewInvalidInputError(field, reason string) *InputError {
	return &InputError{
		Field:  field,
		Reason: reason,
	}
}
