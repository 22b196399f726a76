// Package main is the entry point for the mcpfleet CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/mcpfleet/cmd/mcpfleet/commands"
	fleeterrors "github.com/thoreinstein/mcpfleet/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	code := fleeterrors.ExitUser
	var exitErr *fleeterrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code != 0 {
			code = exitErr.Code
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
	}
	os.Exit(code)
}
