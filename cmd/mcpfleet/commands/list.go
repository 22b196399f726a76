package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	mcpcfg "github.com/thoreinstein/mcpfleet/internal/mcp"
	"github.com/thoreinstein/mcpfleet/internal/mcp/loader"
	"github.com/thoreinstein/mcpfleet/internal/mcp/validator"
)

var (
	listJSON        bool
	listShowSecrets bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listShowSecrets, "show-secrets", false, "Reveal masked secrets in env values")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers in the fleet document",
	Long: `List the MCP servers declared in the fleet document, in document order.

Environment variables containing secrets (TOKEN, KEY, SECRET, PASSWORD, AUTH,
CREDENTIAL, API_KEY) are masked by default. Use --show-secrets to reveal them.

Examples:
  # List all servers
  mcpfleet list

  # List servers from a specific document
  mcpfleet list --document ./fleet/mcp.json

  # Output as JSON
  mcpfleet list --json`,
	RunE: runList,
}

// serverInfoJSON represents a fleet server in JSON output format.
type serverInfoJSON struct {
	Name      string            `json:"name"`
	Transport string            `json:"transport"`
	Command   string            `json:"command,omitempty"`
	Args      []string          `json:"args,omitempty"`
	URL       string            `json:"url,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	descriptors, path, err := loadDescriptors()
	if err != nil {
		return err
	}

	if listJSON {
		return outputListJSON(w, descriptors)
	}
	return outputListTabular(w, path, descriptors)
}

// loadDescriptors validates every entry of the resolved document.
func loadDescriptors() ([]*mcpcfg.ServerDescriptor, string, error) {
	path, err := resolveDocument()
	if err != nil {
		return nil, "", err
	}

	doc, err := loader.Load(path)
	if err != nil {
		return nil, "", err
	}

	descriptors := make([]*mcpcfg.ServerDescriptor, 0, doc.Len())
	for _, raw := range doc.Servers {
		d, err := validator.Validate(raw.Name, raw.Fields)
		if err != nil {
			return nil, "", err
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, doc.Path, nil
}

func outputListJSON(w io.Writer, descriptors []*mcpcfg.ServerDescriptor) error {
	output := make([]serverInfoJSON, len(descriptors))
	for i, d := range descriptors {
		output[i] = serverInfoJSON{
			Name:      d.Name,
			Transport: d.Kind,
			Command:   d.Command,
			Args:      d.Args,
			URL:       d.URL,
			Env:       maskSecrets(d.Env, listShowSecrets),
			Headers:   maskSecrets(d.Headers, listShowSecrets),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputListTabular(w io.Writer, path string, descriptors []*mcpcfg.ServerDescriptor) error {
	fmt.Fprintf(w, "%sDocument: %s%s\n", colorCyan+colorBold, path, colorReset)

	if len(descriptors) == 0 {
		fmt.Fprintf(w, "  %s(no servers configured)%s\n", colorGray, colorReset)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sNAME%s\t%sTRANSPORT%s\t%sCOMMAND/URL%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, d := range descriptors {
		endpoint := d.URL
		if d.IsStdio() {
			endpoint = strings.TrimSpace(d.Command + " " + strings.Join(d.Args, " "))
		}
		endpoint = truncate(endpoint, 60)

		fmt.Fprintf(tw, "  %s%s%s\t%s\t%s\n",
			colorGreen, d.Name, colorReset,
			d.Kind,
			endpoint)
	}
	return tw.Flush()
}
