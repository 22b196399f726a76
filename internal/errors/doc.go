// Package errors defines how mcpfleet commands fail.
//
// Commands return an [ExitError] carrying a Unix exit code
// (ExitSuccess, ExitUser, ExitSystem) and an optional suggestion.
// main unwraps it once, prints the message and suggestion, and exits
// with the code:
//
//	var exitErr *fleeterrors.ExitError
//	if errors.As(err, &exitErr) {
//		fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
//		os.Exit(exitErr.Code)
//	}
//
// The sentinels (ErrMissingName, ErrNoDocument, ErrInvalidConfig)
// mark conditions several commands need to branch on with
// [errors.Is]; everything else stays a plain wrapped error.
package errors
