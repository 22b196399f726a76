package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	fleeterrors "github.com/thoreinstein/mcpfleet/internal/errors"
	"github.com/thoreinstein/mcpfleet/internal/logging"
	mcpcfg "github.com/thoreinstein/mcpfleet/internal/mcp"
)

var (
	showJSON        bool
	showShowSecrets bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showShowSecrets, "show-secrets", false, "Reveal masked secrets in environment variables and headers")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Display fleet server details",
	Long: `Display the validated configuration of one server from the fleet
document: transport kind, command or URL, arguments, environment
variables, and headers.

When the name is omitted and stdin is a terminal, an interactive fuzzy
picker is shown.

Environment variables and headers are masked by default to protect secrets.
Use --show-secrets to reveal the full values.

Examples:
  mcpfleet show weather
  mcpfleet show weather --show-secrets
  mcpfleet show weather --json
  mcpfleet show`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	descriptors, _, err := loadDescriptors()
	if err != nil {
		return err
	}

	var target *mcpcfg.ServerDescriptor
	if len(args) == 1 {
		for _, d := range descriptors {
			if d.Name == args[0] {
				target = d
				break
			}
		}
		if target == nil {
			return fleeterrors.NewUserError(
				errors.Newf("server %q not in fleet document", args[0]),
				"Run: mcpfleet list")
		}
	} else {
		target, err = pickServer(descriptors)
		if err != nil {
			return err
		}
		if target == nil {
			// Picker aborted.
			return nil
		}
	}

	if showJSON {
		return outputShowJSON(os.Stdout, target)
	}
	return outputShowText(os.Stdout, target)
}

// pickServer runs the interactive fuzzy picker. Returns nil with no error
// when the user aborts.
func pickServer(descriptors []*mcpcfg.ServerDescriptor) (*mcpcfg.ServerDescriptor, error) {
	if len(descriptors) == 0 {
		return nil, fleeterrors.NewUserError(
			errors.New("fleet document has no servers"),
			"Run: mcpfleet init")
	}
	if !logging.IsTTY(os.Stdin) {
		return nil, fleeterrors.NewUserError(fleeterrors.ErrMissingName,
			"Pass a server name, or run interactively from a terminal")
	}

	idx, err := fuzzyfinder.Find(
		descriptors,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", descriptors[i].Name, descriptors[i].Kind)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			d := descriptors[i]
			if d.IsStdio() {
				return fmt.Sprintf("Name: %s\nTransport: %s\n\nCommand:\n%s %s",
					d.Name, d.Kind, d.Command, strings.Join(d.Args, " "))
			}
			return fmt.Sprintf("Name: %s\nTransport: %s\n\nURL:\n%s",
				d.Name, d.Kind, d.URL)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return descriptors[idx], nil
}

// showOutput is the JSON output structure.
type showOutput struct {
	Name      string            `json:"name"`
	Transport string            `json:"transport"`
	Command   string            `json:"command,omitempty"`
	Args      []string          `json:"args,omitempty"`
	URL       string            `json:"url,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

func outputShowJSON(w io.Writer, d *mcpcfg.ServerDescriptor) error {
	out := showOutput{
		Name:      d.Name,
		Transport: d.Kind,
		Command:   d.Command,
		Args:      d.Args,
		URL:       d.URL,
		Env:       maskSecrets(d.Env, showShowSecrets),
		Headers:   maskSecrets(d.Headers, showShowSecrets),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputShowText(w io.Writer, d *mcpcfg.ServerDescriptor) error {
	fmt.Fprintf(w, "%s%s%s\n", colorCyan+colorBold, d.Name, colorReset)
	fmt.Fprintf(w, "  Transport: %s\n", d.Kind)

	if d.IsStdio() {
		fmt.Fprintf(w, "  Command:   %s\n", d.Command)
		if len(d.Args) > 0 {
			fmt.Fprintf(w, "  Args:      %s\n", strings.Join(d.Args, " "))
		}
	} else {
		fmt.Fprintf(w, "  URL:       %s\n", d.URL)
	}

	printSortedMap(w, "Env", maskSecrets(d.Env, showShowSecrets))
	printSortedMap(w, "Headers", maskSecrets(d.Headers, showShowSecrets))
	return nil
}

func printSortedMap(w io.Writer, label string, values map[string]string) {
	if len(values) == 0 {
		return
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(w, "  %s:\n", label)
	for _, k := range keys {
		fmt.Fprintf(w, "    %s=%s\n", k, values[k])
	}
}
