package structs

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("validation failed")
)

// Reason classifies a validation failure.
type Reason string

const (
	ReasonMissing       Reason = "missing"
	ReasonMalformedDate Reason = "malformed_date"
	ReasonInvalid       Reason = "invalid"
)

// ValidationError reports the first field of a task body that failed.
type ValidationError struct {
	Field   string
	Reason  Reason
	Message string
	// Fields holds a message for every failing field, keyed by form name.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
