package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSchema is matched by every schema-definition error.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrInvalidValue is matched by every value-resolution error.
	ErrInvalidValue = errors.New("missing or invalid value")
)

// SchemaError reports a malformed schema. It is a programming error and is
// never routed through an error handler.
type SchemaError struct {
	Path   string // Dotted key path, empty for the schema itself
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: %q: %s", e.Path, e.Reason)
}

func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// ValueError reports a variable that was absent or failed its validator.
type ValueError struct {
	Variable string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("environment variable %q was missing or invalid", e.Variable)
}

func (e *ValueError) Is(target error) bool { return target == ErrInvalidValue }

// AggregateError represents multiple failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// Errors returns all errors if err is an AggregateError, otherwise nil.
func Errors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
