// Package paths provides path resolution for fleet documents and the
// mcpfleet config directory.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config, ~/.local/share, ~/.cache).
//
// # Document Discovery
//
// When no document path is given on the command line, commands search a
// fixed list of locations:
//
//	./mcp.json
//	./mcp.yaml
//	./mcp.yml
//	./mcp.toml
//	<ConfigHome>/mcpfleet/mcp.json
//
// Use [FindDocument] for the search, or [DocumentSearchPaths] to report
// the locations to the user.
package paths
