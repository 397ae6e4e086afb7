package measure

import (
	"errors"
	"fmt"
)

// Sentinel errors for the unit registry and conversions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrDuplicateDefault indicates a family attempted to register a second
	// basis-less (default) unit.
	ErrDuplicateDefault = errors.New("family already has a default unit")

	// ErrNilUnit indicates a unit argument was nil.
	ErrNilUnit = errors.New("unit is nil")

	// ErrInvalidFactor indicates a conversion factor that is zero, NaN or infinite.
	ErrInvalidFactor = errors.New("factor must be finite and non-zero")

	// ErrForeignUnit indicates a unit that belongs to a different Registry.
	ErrForeignUnit = errors.New("unit belongs to another registry")

	// ErrUnrelatedUnits indicates there is no registered or cascaded factor
	// between two units.
	ErrUnrelatedUnits = errors.New("no conversion between units")

	// ErrUnknownUnit indicates a unit name that is not registered.
	ErrUnknownUnit = errors.New("unknown unit")
)

// Error kinds categorize errors by their type.
const (
	// KindConfiguration represents errors in unit family setup. These are
	// programming errors and are fatal when raised during initialization.
	KindConfiguration = "configuration"

	// KindInvalidArgument represents errors caused by bad arguments, such
	// as a missing unit.
	KindInvalidArgument = "invalid_argument"

	// KindUnresolvable represents conversions between units that have no
	// known relationship, reported only under UnrelatedError.
	KindUnresolvable = "unresolvable"
)

// Error is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &Error{
//		Op:   "Registry.RegisterDefault",
//		Kind: KindConfiguration,
//		Err:  ErrDuplicateDefault,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Registry.Register", "NewScalar").
	Op string

	// Kind categorizes the error (e.g., KindConfiguration, KindInvalidArgument).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context carries unit names, families and other debugging details (optional).
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("measure: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("measure: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("measure: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error. A target *Error matches
// when its Kind equals this error's Kind and its Op is empty or equal.
// Any other target is compared against the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
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

// WithContext returns a copy of the error with ctx merged into its Context.
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

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

// NewInvalidArgumentError creates a new Error with KindInvalidArgument.
func NewInvalidArgumentError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  err,
	}
}

// NewUnresolvableError creates a new Error with KindUnresolvable.
func NewUnresolvableError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindUnresolvable,
		Err:  err,
	}
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, &Error{Kind: KindConfiguration})
}

// IsInvalidArgument reports whether err is an invalid argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, &Error{Kind: KindInvalidArgument})
}
