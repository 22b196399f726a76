// Package loader reads fleet documents from disk and hands back the raw
// mcpServers mapping in document order. It performs no per-entry validation;
// that is the validator package's job.
//
// JSON is the canonical format. Documents named *.yaml, *.yml, or *.toml are
// accepted in the same shape; everything else is parsed as JSON.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcpfleet/internal/mcp"
)

// RawServer is one unvalidated mcpServers entry.
type RawServer struct {
	// Name is the entry's key in the document.
	Name string

	// Fields holds the entry's raw key/value pairs.
	Fields map[string]any
}

// Document is the raw mcpServers mapping of one fleet document, with entries
// in document key order (sorted for TOML, which reports no order).
type Document struct {
	// Path is the file the document was read from.
	Path string

	// Servers lists the raw entries in order.
	Servers []RawServer
}

// LoadError wraps loading failures with path context.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading fleet document %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and parses the fleet document at path. A leading "~/" is
// expanded to the user's home directory.
//
// Errors wrap the shared sentinels: [mcp.ErrNotFound] when the file does not
// exist, [mcp.ErrParse] when it is not syntactically valid, and
// [mcp.ErrSchema] when the document lacks an mcpServers object mapping.
func Load(path string) (*Document, error) {
	path = expandHome(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: no such file", mcp.ErrNotFound)}
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	var servers []RawServer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		servers, err = parseYAML(data)
	case ".toml":
		servers, err = parseTOML(data)
	default:
		servers, err = parseJSON(data)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return &Document{Path: path, Servers: servers}, nil
}

// Len returns the number of entries in the document.
func (d *Document) Len() int {
	return len(d.Servers)
}

// Names returns the entry names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Servers))
	for i, s := range d.Servers {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the raw entry with the given name.
func (d *Document) Lookup(name string) (RawServer, bool) {
	for _, s := range d.Servers {
		if s.Name == name {
			return s, true
		}
	}
	return RawServer{}, false
}

func parseJSON(data []byte) ([]RawServer, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: top-level value must be an object", mcp.ErrSchema)
		}
		return nil, fmt.Errorf("%w: %v", mcp.ErrParse, err)
	}

	raw, ok := root["mcpServers"]
	if !ok {
		return nil, fmt.Errorf("%w: missing required key %q", mcp.ErrSchema, "mcpServers")
	}

	// Walk the mcpServers object token by token so entries come back in
	// document order; encoding/json maps do not preserve it.
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mcp.ErrParse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: %q must be an object mapping server names to entries", mcp.ErrSchema, "mcpServers")
	}

	var servers []RawServer
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", mcp.ErrParse, err)
		}
		name := tok.(string)

		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("%w: server %q: entry must be an object", mcp.ErrSchema, name)
		}

		// Duplicate keys: last one wins, matching encoding/json map decoding.
		if i, seen := index[name]; seen {
			servers[i].Fields = fields
			continue
		}
		index[name] = len(servers)
		servers = append(servers, RawServer{Name: name, Fields: fields})
	}

	return servers, nil
}

func parseYAML(data []byte) ([]RawServer, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", mcp.ErrParse, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top-level value must be a mapping", mcp.ErrSchema)
	}

	// yaml.Node preserves key order; mapping content alternates key, value.
	top := root.Content[0]
	var serversNode *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value == "mcpServers" {
			serversNode = top.Content[i+1]
			break
		}
	}
	if serversNode == nil {
		return nil, fmt.Errorf("%w: missing required key %q", mcp.ErrSchema, "mcpServers")
	}
	if serversNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %q must be a mapping of server names to entries", mcp.ErrSchema, "mcpServers")
	}

	var servers []RawServer
	for i := 0; i+1 < len(serversNode.Content); i += 2 {
		name := serversNode.Content[i].Value
		var fields map[string]any
		if err := serversNode.Content[i+1].Decode(&fields); err != nil {
			return nil, fmt.Errorf("%w: server %q: entry must be a mapping", mcp.ErrSchema, name)
		}
		servers = append(servers, RawServer{Name: name, Fields: fields})
	}

	return servers, nil
}

func parseTOML(data []byte) ([]RawServer, error) {
	var doc struct {
		MCPServers map[string]map[string]any `toml:"mcpServers"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", mcp.ErrParse, err)
	}
	if doc.MCPServers == nil {
		return nil, fmt.Errorf("%w: missing required key %q", mcp.ErrSchema, "mcpServers")
	}

	// go-toml reports no key order; sort for deterministic output.
	names := make([]string, 0, len(doc.MCPServers))
	for name := range doc.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)

	servers := make([]RawServer, 0, len(names))
	for _, name := range names {
		servers = append(servers, RawServer{Name: name, Fields: doc.MCPServers[name]})
	}

	return servers, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
