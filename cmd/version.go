// Package cmd holds build metadata injected at link time.
package cmd

// Set via -ldflags "-X" by the release build.
var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git revision this build was produced from.
	Commit = "none"
	// Date is when this build was produced.
	Date = "unknown"
)
