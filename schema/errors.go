package schema

import "fmt"

// ValidationError reports a payload that failed a field constraint.
// Surfaced to clients as a 422 with the detail string as the body.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}
