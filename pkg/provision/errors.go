package provision

import (
	"errors"
	"fmt"
)

// ErrMissingField means a remote call succeeded but its response lacked the
// identifier or result the workflow needed.
var ErrMissingField = errors.New("response is missing the expected field")

type (
	// ValidationError is returned before any remote call is made.
	ValidationError struct {
		Field  string
		Reason string
	}

	RemoteCallError struct {
		Operation string
		// Attempts is set for operations that are retried.
		Attempts int
		Hint     string
		Cause    error
	}

	// AlreadyExistsError is non-fatal for the fleet role; the workflow logs it as a warning.
	AlreadyExistsError struct {
		Resource string
		Name     string
	}

	DocumentError struct {
		Path  string
		Cause error
	}
)

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("no %s specified", e.Field)
}

func (e *RemoteCallError) Error() string {
	msg := e.Operation + " failed"
	if e.Attempts > 1 {
		msg += fmt.Sprintf(" after %d attempts", e.Attempts)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

func (e *RemoteCallError) Unwrap() error {
	return e.Cause
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Name)
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("couldn't get document %s: %v", e.Path, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// remoteResult turns the (result, error) pair of a wrapper call into a single error.
func remoteResult(operation string, ok bool, err error) error {
	if err != nil {
		return &RemoteCallError{Operation: operation, Cause: err}
	}
	if !ok {
		return &RemoteCallError{Operation: operation, Cause: ErrMissingField}
	}
	return nil
}
