package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the service layer. Handlers translate them to HTTP
// status codes; raw store errors never cross the service boundary.
var (
	// ErrNotFound marks an entity that does not exist by id or name.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks caller-correctable input: malformed search
	// parameters or unmet category attribute requirements.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict marks a write that collides with an existing record, such
	// as creating a category under a name already taken.
	ErrConflict = errors.New("conflict")

	// ErrDataAccess marks an underlying store failure.
	ErrDataAccess = errors.New("data access error")
)

// NotFoundf wraps ErrNotFound with an operation-specific message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// InvalidArgumentf wraps ErrInvalidArgument with an operation-specific message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// Conflictf wraps ErrConflict with an operation-specific message.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}

// DataAccessf wraps ErrDataAccess with an operation-specific message. The
// store error stays in the unwrap chain for logging but is kept out of the
// message, so raw driver errors never reach a response body.
func DataAccessf(cause error, format string, args ...interface{}) error {
	return &dataAccessError{
		message: fmt.Sprintf(format, args...),
		cause:   cause,
	}
}

type dataAccessError struct {
	message string
	cause   error
}

func (e *dataAccessError) Error() string {
	return e.message + ": " + ErrDataAccess.Error()
}

func (e *dataAccessError) Unwrap() []error {
	return []error{ErrDataAccess, e.cause}
}
