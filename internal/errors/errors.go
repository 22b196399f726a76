package errors

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	// ExitSuccess means the command completed.
	ExitSuccess = 0
	// ExitUser means the user gave bad input or configuration.
	ExitUser = 1
	// ExitSystem means the environment failed: I/O, network, permissions.
	ExitSystem = 2
)

// Sentinels shared across commands.
var (
	// ErrMissingName is returned when a command needs a server name
	// and none was given or selected.
	ErrMissingName = errors.New("server name is required")

	// ErrNoDocument is returned when no fleet document can be located.
	ErrNoDocument = errors.New("no fleet document found")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitError carries an exit code and an optional suggestion alongside
// the underlying error. main inspects it with errors.As to pick the
// process exit code and print the suggestion.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError wraps err with an exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewExitErrorWithSuggestion wraps err with an exit code and a
// suggestion shown to the user.
func NewExitErrorWithSuggestion(err error, code int, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: code, Suggestion: suggestion}
}

// NewUserError wraps err as a user mistake (ExitUser) with a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitUser, suggestion)
}

// NewSystemError wraps err as an environment failure (ExitSystem) with
// a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitSystem, suggestion)
}

// NewConfigError wraps a configuration error with the standard
// suggestion to run the validator.
func NewConfigError(err error) *ExitError {
	return NewExitErrorWithSuggestion(err, ExitUser, "Run: mcpfleet validate")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}
