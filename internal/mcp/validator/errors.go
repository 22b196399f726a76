// Package validator checks raw mcpServers entries against the three
// supported transport shapes and produces validated server descriptors.
package validator

import (
	"errors"
	"fmt"

	"github.com/thoreinstein/mcpfleet/internal/mcp"
)

// ValidationError reports a single invalid entry with server and field
// context. It wraps one of the shared sentinels (mcp.ErrSchema or
// mcp.ErrConflict) so callers can classify it with errors.Is.
type ValidationError struct {
	// Server identifies which entry is invalid.
	Server string

	// Field identifies the offending field, when one can be named.
	Field string

	// Message is a human-readable description of the problem.
	Message string

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("server %q field %q: %s", e.Server, e.Field, e.Message)
	}
	return fmt.Sprintf("server %q: %s", e.Server, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *ValidationError) Is(target error) bool {
	return e.Err != nil && errors.Is(e.Err, target)
}

func schemaErr(server, field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Server:  server,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Err:     mcp.ErrSchema,
	}
}
