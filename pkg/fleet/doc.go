// Package fleet loads MCP server fleet configuration and produces deferred
// client handles for an agent host runtime.
//
// A fleet document is the standard mcp.json format used by Claude Desktop
// and other MCP-compatible applications:
//
//	{
//	  "mcpServers": {
//	    "weather": {
//	      "command": "uvx",
//	      "args": ["mcp-server-weather"],
//	      "env": {"API_KEY": "value"}
//	    },
//	    "events": {
//	      "transport": "sse",
//	      "url": "http://localhost:8000/sse"
//	    },
//	    "api": {
//	      "transport": "streamable-http",
//	      "url": "http://localhost:8000/mcp"
//	    }
//	  }
//	}
//
// # Loading
//
// [Load] parses, validates, and resolves the document into one
// [ClientConfig] per server:
//
//	configs, err := fleet.Load("mcp.json", nil)
//
//	// Select specific servers, filter their tools, qualify tool names.
//	configs, err := fleet.Load("mcp.json", &fleet.Options{
//	    ServerNames: []string{"weather", "events"},
//	    ToolFilters: map[string]*fleet.ToolFilters{
//	        "weather": {Allowed: []string{"get_weather"}},
//	    },
//	    Prefix: fleet.Prefix("mcp"),
//	})
//
// Loading is synchronous, single-pass, and all-or-nothing: any invalid entry
// fails the whole call, and no process or network resource is touched.
// Failures are classified by the sentinel errors [ErrNotFound], [ErrParse],
// [ErrSchema], and [ErrConflict].
//
// # Clients
//
// [ClientConfig.NewClient] (or the [LoadClients] convenience wrapper) turns
// a configuration into an unconnected [Client] handle. The handle's
// lifecycle belongs to the host: [Client.Start] invokes the transport
// factory and connects within the configured startup timeout, and
// [Client.Close] tears the session down. Tool names surfaced by
// [Client.ListTools] carry the server's effective prefix, and
// [Client.CallTool] routes prefixed names back to the server's original
// tool names.
package fleet
