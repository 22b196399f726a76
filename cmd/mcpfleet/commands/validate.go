package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	fleeterrors "github.com/thoreinstein/mcpfleet/internal/errors"
	"github.com/thoreinstein/mcpfleet/pkg/fleet"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the fleet document",
	Long: `Validate the fleet document end to end: parse it, validate every server
entry, and construct the transport factories. Nothing is connected.

Exits non-zero on the first invalid entry, naming the server and field.

Examples:
  mcpfleet validate
  mcpfleet validate --document ./fleet/mcp.yaml`,
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, _ []string) error {
	return runValidateWithWriter(os.Stdout)
}

// runValidateWithWriter allows injecting a writer for testing.
func runValidateWithWriter(w io.Writer) error {
	path, err := resolveDocument()
	if err != nil {
		return err
	}

	configs, err := fleet.Load(path, nil)
	if err != nil {
		return validationExitError(err)
	}

	fmt.Fprintf(w, "%s%s%s is valid: %d server(s)\n", colorGreen, path, colorReset, len(configs))
	for _, cfg := range configs {
		fmt.Fprintf(w, "  %s\n", cfg.Name())
	}
	return nil
}

// validationExitError maps load failures to exit codes and suggestions.
func validationExitError(err error) error {
	switch {
	case errors.Is(err, fleet.ErrNotFound):
		return fleeterrors.NewUserError(err, "Check the document path, or run: mcpfleet init")
	case errors.Is(err, fleet.ErrParse):
		return fleeterrors.NewUserError(err, "Fix the document syntax")
	case errors.Is(err, fleet.ErrConflict):
		return fleeterrors.NewUserError(err, "Remove either \"command\" or \"transport\"/\"url\" from the entry")
	case errors.Is(err, fleet.ErrSchema):
		return fleeterrors.NewUserError(err, "Fix the named field and re-run: mcpfleet validate")
	default:
		return fleeterrors.NewExitError(err, fleeterrors.ExitSystem)
	}
}
