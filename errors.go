package waylay

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNilHandler indicates Intercept/Apply was called without a handler.
	ErrNilHandler = errors.New("nil handler")

	// ErrNoNames indicates Intercept/Apply was called with no method names.
	ErrNoNames = errors.New("no method names")

	// ErrMethodMissing indicates dispatch found no method body anywhere in
	// the receiver's class chain.
	ErrMethodMissing = errors.New("method missing")
)

// DispatchError reports a failed method resolution.
// It wraps ErrMethodMissing with the class and selector involved.
type DispatchError struct {
	Class  string // class of the receiver
	Method string // selector that failed to resolve
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s does not understand %q", e.Class, e.Method)
}

func (e *DispatchError) Unwrap() error {
	return ErrMethodMissing
}

// newDispatchError creates a DispatchError for an unresolvable selector.
func newDispatchError(class, method string) error {
	return &DispatchError{Class: class, Method: method}
}
