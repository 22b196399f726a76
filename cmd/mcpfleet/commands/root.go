// Package commands implements the CLI commands for mcpfleet.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpfleet/internal/config"
	fleeterrors "github.com/thoreinstein/mcpfleet/internal/errors"
	"github.com/thoreinstein/mcpfleet/internal/logging"
	"github.com/thoreinstein/mcpfleet/internal/paths"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// documentFlag holds the value of the --document flag.
var documentFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// appConfig holds the loaded application config.
var appConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&documentFlag, "document", "d", "",
		"path to the fleet document (default: search mcp.json locations)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// Add version flag
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mcpfleet version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	appConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "mcpfleet",
	Short: "Load and inspect MCP server fleet configurations",
	Long: `mcpfleet loads declarative MCP (Model Context Protocol) server fleet
documents, validates them, and turns them into per-server client
configurations for an agent host.

A fleet document is the familiar mcpServers mapping:

  {
    "mcpServers": {
      "weather": {"command": "uvx", "args": ["mcp-server-weather"]},
      "events":  {"transport": "sse", "url": "http://localhost:8000/sse"}
    }
  }

Documents may be JSON, YAML, or TOML. When --document is omitted,
mcpfleet searches the working directory and the user config directory.`,
	Example: `  # Validate the fleet document
  mcpfleet validate

  # List configured servers
  mcpfleet list

  # Inspect one server, or pick interactively
  mcpfleet show weather
  mcpfleet show

  # Create a starter document
  mcpfleet init`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return fleeterrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MCPFLEET_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fleeterrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces application config load failures.
func checkConfig(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return fleeterrors.NewConfigError(configLoadErr)
	}
	return nil
}

// resolveDocument returns the fleet document path to operate on.
// Precedence: --document flag, then default_document from the app
// config, then the standard search locations.
func resolveDocument() (string, error) {
	if documentFlag != "" {
		return documentFlag, nil
	}
	if appConfig != nil && appConfig.DefaultDocument != "" {
		return appConfig.DefaultDocument, nil
	}

	path, err := paths.FindDocument()
	if err != nil {
		return "", fleeterrors.NewUserError(
			errors.Wrapf(fleeterrors.ErrNoDocument, "searched %v", paths.DocumentSearchPaths()),
			"Run: mcpfleet init, or pass --document")
	}
	return path, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
