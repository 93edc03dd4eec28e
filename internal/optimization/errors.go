package optimization

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is wrapped by errors returned when a vector's length
// disagrees with the solver's established dimensionality.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Error represents an optimization error with context
// that can be wrapped with additional information.
type Error struct {
	// Message describes the error that occurred.
	Message string
	// Op is the operation that caused the error.
	Op string
	// Component is the component where the error occurred.
	Component string
	// Err is the underlying error that triggered this one, if any.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	prefix := e.Op
	if e.Component != "" {
		prefix = e.Component
		if e.Op != "" {
			prefix += ": " + e.Op
		}
	}

	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if prefix != "" {
		return prefix + ": " + msg
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WithOperation adds operation context to the error.
func (e *Error) WithOperation(op string) *Error {
	e.Op = op
	return e
}

// WithComponent adds component context to the error.
func (e *Error) WithComponent(component string) *Error {
	e.Component = component
	return e
}

// NewError creates a new optimization error with the given message.
func NewError(message string) *Error {
	return &Error{Message: message}
}

// WrapError wraps an existing error with additional context.
// If err is nil, WrapError returns nil.
func WrapError(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapErrorf wraps an existing error with additional formatted context.
// If err is nil, WrapErrorf returns nil.
func WrapErrorf(err error, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// IsOptimizationError reports whether err's chain contains an *Error and returns it.
func IsOptimizationError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsDimensionMismatch reports whether err was caused by a dimension mismatch.
func IsDimensionMismatch(err error) bool {
	return errors.Is(err, ErrDimensionMismatch)
}

func newDimensionError(op, what string, got, want int) *Error {
	return WrapErrorf(ErrDimensionMismatch,
		"size of %s (%d) is inconsistent with the loaded number of dimensions (%d)", what, got, want).
		WithOperation(op).
		WithComponent("solver")
}
