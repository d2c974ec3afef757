package enumset

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure categories the library can produce.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidArgument indicates a precondition violation at the call site:
	// a bad type, an empty definition, a non-unique name or value, or an
	// unrecognized attribute.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrImmutableViolation indicates an attempt to mutate a constructed
	// Symbol or Enum.
	ErrImmutableViolation = errors.New("immutable violation")
)

// Error kinds categorize errors by their type.
const (
	// KindInvalidArgument represents precondition violations.
	KindInvalidArgument = "invalid_argument"

	// KindImmutableViolation represents mutation attempts on constructed
	// instances.
	KindImmutableViolation = "immutable_violation"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// Error implements the error interface and supports error unwrapping, making
// it compatible with errors.Is() and errors.As(). Matching against the
// sentinel errors works by kind:
//
//	_, err := enumset.New(enumset.Names())
//	errors.Is(err, enumset.ErrInvalidArgument) // true
type Error struct {
	// Op is the operation that failed (e.g., "Enum.New", "Symbol.Attr").
	Op string

	// Kind categorizes the error (KindInvalidArgument or
	// KindImmutableViolation).
	Kind string

	// Err is the underlying error describing the violated constraint.
	Err error

	// Context provides additional detail about the error (optional), such
	// as the offending name, value, or attribute.
	Context map[string]any
}

// Error implements the error interface, returning a formatted message that
// includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("enumset: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("enumset: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("enumset: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error. A sentinel error matches when the
// kind corresponds; another *Error matches on equal Kind (and equal Op when
// the target specifies one); anything else is delegated to the underlying
// error.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrImmutableViolation:
		return e.Kind == KindImmutableViolation
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a new Error with the provided context added. The
// receiver is not modified.
//
// Example:
//
//	err := enumset.NewInvalidArgumentError("Enum.New", errors.New("name is not unique"))
//	err = err.WithContext(map[string]any{"name": "RED"})
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewInvalidArgumentError creates a new Error with KindInvalidArgument.
func NewInvalidArgumentError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  err,
	}
}

// NewImmutableViolationError creates a new Error with KindImmutableViolation.
func NewImmutableViolationError(op string) *Error {
	return &Error{
		Op:   op,
		Kind: KindImmutableViolation,
		Err:  errors.New("instance is immutable after construction"),
	}
}
