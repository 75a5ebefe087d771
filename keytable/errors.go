package keytable

import (
	"errors"
	"fmt"
)

// Errors returned by table loading.
var (
	// ErrInvalidCode indicates a [keys] entry whose key is not a decimal
	// integer.
	ErrInvalidCode = errors.New("invalid key code")

	// ErrEmptyIdentifier indicates a [keys] entry mapping to an empty
	// string.
	ErrEmptyIdentifier = errors.New("empty identifier")

	// ErrDuplicateCode indicates two [keys] entries resolving to the same
	// numeric code (e.g. "13" and "013").
	ErrDuplicateCode = errors.New("duplicate key code")
)

// LoadError reports a failure to load or parse a table file.
type LoadError struct {
	// Path is the file path, or "<data>" when parsing raw bytes.
	Path string
	// Message describes the failure.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("key table %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
