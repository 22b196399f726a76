// Package mcp defines the validated server descriptor types shared by the
// mcpfleet loading pipeline.
//
// A fleet document (mcp.json) maps server names to entries describing how to
// reach each MCP server. After validation, every entry becomes a
// [ServerDescriptor] tagged with exactly one transport kind:
//
//	// Local stdio server
//	d := mcp.NewStdioDescriptor("github", "npx",
//	    []string{"-y", "@modelcontextprotocol/server-github"},
//	    map[string]string{"GITHUB_TOKEN": "ghp_xxx"})
//
//	// Remote streamable HTTP server
//	d := mcp.NewStreamableHTTPDescriptor("api", "https://api.example.com/mcp", nil)
//
// Descriptors are immutable value objects: constructors copy their slice and
// map arguments, and nothing in the pipeline mutates a descriptor after
// construction.
//
// # Error Taxonomy
//
// The package also carries the sentinel errors shared by the loader and
// validator so callers can classify failures with [errors.Is]:
//
//   - [ErrNotFound]: the document or a requested server name does not exist
//   - [ErrParse]: the document is not syntactically valid
//   - [ErrSchema]: the document or an entry is structurally invalid
//   - [ErrConflict]: an entry mixes stdio and network discriminator fields
package mcp
