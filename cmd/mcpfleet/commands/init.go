package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpfleet/internal/paths"
	"github.com/thoreinstein/mcpfleet/pkg/fileutil"
)

var (
	initForce  bool
	initFormat string
	initOutput string
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing document")
	initCmd.Flags().StringVar(&initFormat, "format", "json", "Document format: json, yaml, toml")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output path (default: ./mcp.<format>)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter fleet document",
	Long: `Write a starter fleet document with one example stdio server and one
example SSE server. The write is atomic: an interrupted run never
leaves a half-written document behind.

Examples:
  # Create ./mcp.json
  mcpfleet init

  # Create a YAML document
  mcpfleet init --format yaml

  # Create the user-level document
  mcpfleet init --output ~/.config/mcpfleet/mcp.json

  # Overwrite an existing document
  mcpfleet init --force`,
	RunE: runInit,
}

// starterDocument is the scaffold written by init.
type starterDocument struct {
	MCPServers map[string]starterServer `json:"mcpServers" yaml:"mcpServers" toml:"mcpServers"`
}

type starterServer struct {
	Command   string   `json:"command,omitempty" yaml:"command,omitempty" toml:"command,omitempty"`
	Args      []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Transport string   `json:"transport,omitempty" yaml:"transport,omitempty" toml:"transport,omitempty"`
	URL       string   `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
}

func runInit(_ *cobra.Command, _ []string) error {
	path := initOutput
	if path == "" {
		ext := initFormat
		if ext == "json" || ext == "yaml" || ext == "toml" {
			path = "mcp." + ext
		} else {
			return errors.Newf("unknown format %q (valid: json, yaml, toml)", initFormat)
		}
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Printf("Document already exists at %s\n", path)
		fmt.Println("Use --force to overwrite")
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := paths.EnsureDir(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating document directory")
		}
	}

	doc := starterDocument{
		MCPServers: map[string]starterServer{
			"weather": {
				Command: "uvx",
				Args:    []string{"mcp-server-weather"},
			},
			"events": {
				Transport: "sse",
				URL:       "http://localhost:8000/sse",
			},
		},
	}

	var err error
	switch initFormat {
	case "json":
		err = fileutil.AtomicWriteJSON(path, doc)
	case "yaml":
		err = fileutil.AtomicWriteYAML(path, doc)
	case "toml":
		err = fileutil.AtomicWriteTOML(path, doc)
	default:
		return errors.Newf("unknown format %q (valid: json, yaml, toml)", initFormat)
	}
	if err != nil {
		return errors.Wrap(err, "writing document")
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
