package keyevent

import (
	"errors"
	"fmt"
)

// Errors returned by decoding operations.
var (
	// ErrMalformed categorizes failures caused by bad input. Every decode
	// failure except ErrIgnored matches it via errors.Is.
	ErrMalformed = errors.New("malformed keyboard event")

	// ErrIgnored is returned by combinators built with Consider when the
	// selector declines the event. It signals "caller chose not to
	// handle", not bad input; integration layers should drop the event
	// silently when they see it.
	ErrIgnored = errors.New("keyboard event ignored")
)

// FieldError reports a required field that was missing or wrongly typed.
type FieldError struct {
	// Field is the raw event field name, e.g. "shiftKey".
	Field string
	// Reason describes what was wrong with the field.
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("keyboard event field %q: %s", e.Field, e.Reason)
}

// Is implements error matching against ErrMalformed.
func (e *FieldError) Is(target error) bool {
	return target == ErrMalformed
}
