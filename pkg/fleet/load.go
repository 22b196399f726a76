package fleet

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/thoreinstein/mcpfleet/internal/mcp/loader"
	"github.com/thoreinstein/mcpfleet/internal/mcp/validator"
	"github.com/thoreinstein/mcpfleet/internal/naming"
	"github.com/thoreinstein/mcpfleet/internal/transport"
)

// Options adjusts how a fleet document is resolved. The zero value loads
// every server with the default startup timeout, no filters, and per-server
// name prefixes.
type Options struct {
	// StartupTimeout applies uniformly to every loaded configuration.
	// Zero means DefaultStartupTimeout; negative values fail with ErrSchema.
	StartupTimeout time.Duration

	// ToolFilters maps server names to their filter policy. Servers absent
	// from the map get no filtering.
	ToolFilters map[string]*ToolFilters

	// Prefix is the global tool-name prefix. Nil prefixes each server's
	// tools with the server name alone; a non-empty value yields
	// "{prefix}_{serverName}"; an explicitly empty string disables
	// prefixing entirely. Use the Prefix helper to build the pointer.
	Prefix *string

	// ServerNames selects which servers to load and in what order. Nil
	// loads every server in document order. An explicitly empty (non-nil)
	// slice selects none. Every listed name must exist in the document.
	ServerNames []string
}

// Prefix returns a pointer to s, for populating Options.Prefix inline.
func Prefix(s string) *string {
	return &s
}

// Load reads the fleet document at path and resolves one ClientConfig per
// selected server, in deterministic order: the document's key order, or
// ServerNames order when a selection is given.
//
// Construction is atomic. If any selected entry fails validation, or any
// requested server name is missing, the whole call fails and no configs are
// returned.
func Load(path string, opts *Options) ([]*ClientConfig, error) {
	if opts == nil {
		opts = &Options{}
	}

	timeout := opts.StartupTimeout
	if timeout == 0 {
		timeout = DefaultStartupTimeout
	}
	if timeout < 0 {
		return nil, fmt.Errorf("%w: startup timeout must be positive, got %s", ErrSchema, opts.StartupTimeout)
	}

	doc, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded fleet document", "path", doc.Path, "servers", doc.Len())

	selected, err := selectServers(doc, opts.ServerNames)
	if err != nil {
		return nil, err
	}

	configs := make([]*ClientConfig, 0, len(selected))
	for _, raw := range selected {
		descriptor, err := validator.Validate(raw.Name, raw.Fields)
		if err != nil {
			return nil, err
		}

		factory, err := transport.Build(descriptor)
		if err != nil {
			return nil, fmt.Errorf("server %q: %w", raw.Name, err)
		}

		prefix := naming.ResolvePrefix(raw.Name, opts.Prefix)
		configs = append(configs, &ClientConfig{
			name:           raw.Name,
			transport:      factory,
			StartupTimeout: timeout,
			Filters:        opts.ToolFilters[raw.Name],
			Prefix:         prefix,
		})
		slog.Debug("configured fleet server", "server", raw.Name, "kind", descriptor.Kind, "prefix", prefix)
	}

	return configs, nil
}

// LoadClients is a convenience wrapper that materializes an unconnected
// client handle for every configuration Load returns.
func LoadClients(path string, opts *Options) ([]*Client, error) {
	configs, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	clients := make([]*Client, len(configs))
	for i, cfg := range configs {
		clients[i] = cfg.NewClient()
	}
	return clients, nil
}

// selectServers applies the ServerNames selection. A nil selection takes
// the whole document in key order; otherwise the requested names are
// validated up front and returned in request order, duplicates collapsed to
// their first occurrence.
func selectServers(doc *loader.Document, names []string) ([]loader.RawServer, error) {
	if names == nil {
		return doc.Servers, nil
	}

	selected := make([]loader.RawServer, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		raw, ok := doc.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("server %q not present in %s: %w", name, doc.Path, ErrNotFound)
		}
		selected = append(selected, raw)
	}
	return selected, nil
}
