package reading

import "errors"

// Sentinel errors for reading-request validation.
var (
	// ErrNoRequest indicates the reading file was not found.
	ErrNoRequest = errors.New("reading file not found")
	// ErrMissingField indicates a required field (e.g. subject.name) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrUnknownKind indicates an unrecognized analysis kind value.
	ErrUnknownKind = errors.New("unknown analysis kind")
	// ErrBadValue indicates a field holds a value that cannot be parsed.
	ErrBadValue = errors.New("malformed field value")
)

// ValidationError records a validation problem with source context.
type ValidationError struct {
	SourceFile string
	Field      string
	Err        error
}

// Error returns a human-readable string including the source file.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.SourceFile + ": " + e.Field + ": " + e.Err.Error()
	}
	return e.SourceFile + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
