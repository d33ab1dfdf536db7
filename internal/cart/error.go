package cart

import "fmt"

// ValidationError is caller-correctable input trouble: the cart can be
// fixed and resubmitted without losing anything.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
