// Package logging builds the [log/slog] loggers used across mcpfleet.
//
// Two renderers are available: a colorized single-line text handler
// for terminals and the standard JSON handler for files and pipes.
// Attribute values under credential-shaped keys (tokens, API keys,
// Authorization headers) are masked before they reach any output.
//
// Construct a logger from a [Config]:
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//	})
//
// In tests, [ForTest] routes records through t.Log so they surface
// only on failure or under -v. [NewDiscard] silences logging for
// --quiet. [NewContext] and [FromContext] pass a logger through a
// command's context.
package logging
