package fleet

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/thoreinstein/mcpfleet/internal/naming"
)

// Client implementation identity advertised to MCP servers.
const (
	clientName    = "mcpfleet"
	clientVersion = "0.1.0"
)

// Client is a deferred handle for one configured fleet server.
//
// A handle is created unconnected; the host runtime owns its lifecycle.
// Start invokes the transport factory and connects, Close tears the session
// down, and a closed handle may be started again. Handles created from the
// same ClientConfig share no connection state.
type Client struct {
	name           string
	transport      TransportFactory
	startupTimeout time.Duration
	filters        *ToolFilters
	prefix         string

	mu      sync.Mutex
	session *mcp.ClientSession
}

// Name returns the server name this handle is bound to.
func (c *Client) Name() string {
	return c.name
}

// Prefix returns the effective tool-name prefix for this handle.
func (c *Client) Prefix() string {
	return c.prefix
}

// Started reports whether the handle currently holds a live session.
func (c *Client) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// Start invokes the transport factory and connects to the server, waiting
// at most the configured startup timeout. It fails with ErrAlreadyStarted
// on a handle that is already connected. Connection failures are returned
// as-is; there is no retry.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return fmt.Errorf("server %q: %w", c.name, ErrAlreadyStarted)
	}

	ctx, cancel := context.WithTimeout(ctx, c.startupTimeout)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    clientName,
		Version: clientVersion,
	}, nil)

	session, err := client.Connect(ctx, c.transport.NewTransport(), nil)
	if err != nil {
		return fmt.Errorf("connecting to server %q: %w", c.name, err)
	}

	c.session = session
	return nil
}

// Close shuts the session down. Closing an unstarted handle is a no-op, and
// a closed handle may be started again.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil
	}
	session := c.session
	c.session = nil

	if err := session.Close(); err != nil {
		return fmt.Errorf("closing server %q: %w", c.name, err)
	}
	return nil
}

// ListTools returns the server's tools after applying the handle's filter
// policy, renamed with the effective prefix.
func (c *Client) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	session, err := c.currentSession()
	if err != nil {
		return nil, err
	}

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tools for server %q: %w", c.name, err)
	}

	var tools []*mcp.Tool
	for _, tool := range result.Tools {
		if !c.filters.Allows(tool.Name) {
			continue
		}
		surfaced := *tool
		surfaced.Name = naming.Join(c.prefix, tool.Name)
		tools = append(tools, &surfaced)
	}
	return tools, nil
}

// CallTool invokes a tool by its surfaced (prefixed) name, routing the
// server's original tool name over the session. Names that do not carry the
// effective prefix, or that are excluded by the filter policy, fail with
// ErrToolNotFound.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	session, err := c.currentSession()
	if err != nil {
		return nil, err
	}

	original, ok := naming.Strip(c.prefix, name)
	if !ok || !c.filters.Allows(original) {
		return nil, fmt.Errorf("server %q: tool %q: %w", c.name, name, ErrToolNotFound)
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      original,
		Arguments: args,
	})
	if err != nil {
		return nil, fmt.Errorf("calling tool %q on server %q: %w", original, c.name, err)
	}
	return result, nil
}

func (c *Client) currentSession() (*mcp.ClientSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil, fmt.Errorf("server %q: %w", c.name, ErrNotStarted)
	}
	return c.session, nil
}
