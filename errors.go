package netinv

import (
	"errors"
	"fmt"
)

// Sentinel errors for common inventory error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrFieldNotFound indicates a field path that does not resolve to any
	// spec in the schema registry. It always originates from user input
	// (a filter flag or an API field name), never from internal state.
	ErrFieldNotFound = errors.New("field not found")

	// ErrCastFailed indicates a raw string value could not be converted to
	// the target field type.
	ErrCastFailed = errors.New("cast failed")

	// ErrDuplicateField indicates two specs share the same dotted path in
	// one registry.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrInvalidInventory indicates an inventory file could not be loaded
	// or failed schema validation.
	ErrInvalidInventory = errors.New("invalid inventory")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a field or host was not found.
	KindNotFound = "not_found"

	// KindCast represents errors converting raw input to a field type.
	KindCast = "cast"

	// KindValidation represents errors related to value validation.
	KindValidation = "validation"

	// KindConfig represents errors related to registry or inventory
	// configuration.
	KindConfig = "configuration"

	// KindInternal represents internal errors.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category
// of error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &netinv.Error{
//		Op:   "Registry.Lookup",
//		Kind: netinv.KindNotFound,
//		Err:  netinv.ErrFieldNotFound,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Registry.Lookup", "Cast").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindCast).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include the field path, the raw value, or other debugging
	// information.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("netinv: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("netinv: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("netinv: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on
// the underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	// Check if target is an Error with matching Kind
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	// Delegate to underlying error
	return errors.Is(e.Err, target)
}

// WithContext returns a new Error with the provided context added.
// This is useful for adding debugging information to errors.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewNotFoundError creates a new Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewCastError creates a new Error with KindCast.
func NewCastError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindCast,
		Err:  err,
	}
}

// NewValidationError creates a new Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewConfigError creates a new Error with KindConfig.
func NewConfigError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindConfig,
		Err:  err,
	}
}

// NewInternalError creates a new Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}
