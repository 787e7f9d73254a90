package jsonschema

import (
	"errors"
	"fmt"
)

// Sentinel errors for common construction-time error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNilFormatValidator indicates a nil format validator was passed to a
	// builder. Absence of a format constraint is expressed with format.None,
	// never with nil.
	ErrNilFormatValidator = errors.New("format validator cannot be nil")

	// ErrUnknownType indicates a schema document declared a type for which no
	// node variant exists.
	ErrUnknownType = errors.New("unknown schema type")

	// ErrUnknownFormat indicates a schema document referenced a format name
	// that is not registered.
	ErrUnknownFormat = errors.New("unknown format")
)

// Error kinds categorize errors by their type.
const (
	// KindSyntax represents construction-time errors caused by malformed
	// input, such as an invalid regular expression source.
	KindSyntax = "syntax"

	// KindNullArgument represents construction-time errors caused by a nil
	// argument where an explicit sentinel is required.
	KindNullArgument = "null_argument"

	// KindConfiguration represents errors in schema documents or validator
	// configuration.
	KindConfiguration = "configuration"

	// KindInternal represents internal library errors.
	KindInternal = "internal"
)

// SchemaError is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of error.
//
// SchemaError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As(). It is raised only at
// construction time (builders, loader, instrumentation setup); validation-time
// failures are reported through *ValidationError instead.
type SchemaError struct {
	// Op is the operation that failed (e.g., "StringSchemaBuilder.Build").
	Op string

	// Kind categorizes the error (e.g., KindSyntax, KindNullArgument).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *SchemaError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("jsonschema: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("jsonschema: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("jsonschema: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Is implements error matching for SchemaError, allowing comparison based on
// the underlying error or the SchemaError itself.
func (e *SchemaError) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*SchemaError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a new SchemaError with the provided context added.
func (e *SchemaError) WithContext(ctx map[string]any) *SchemaError {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewSyntaxError creates a new SchemaError with KindSyntax.
func NewSyntaxError(op string, err error) *SchemaError {
	return &SchemaError{
		Op:   op,
		Kind: KindSyntax,
		Err:  err,
	}
}

// NewNullArgumentError creates a new SchemaError with KindNullArgument.
func NewNullArgumentError(op string, err error) *SchemaError {
	return &SchemaError{
		Op:   op,
		Kind: KindNullArgument,
		Err:  err,
	}
}

// NewConfigurationError creates a new SchemaError with KindConfiguration.
func NewConfigurationError(op string, err error) *SchemaError {
	return &SchemaError{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

// NewInternalError creates a new SchemaError with KindInternal.
func NewInternalError(op string, err error) *SchemaError {
	return &SchemaError{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}
