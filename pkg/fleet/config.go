package fleet

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultStartupTimeout bounds client connection when Options leaves
// StartupTimeout unset.
const DefaultStartupTimeout = 30 * time.Second

// TransportFactory is a deferred, zero-argument transport constructor.
// Factories built by Load are pure: each call returns an independent,
// unconnected transport and no call mutates the owning configuration.
//
// The interface is satisfied by the factories the loading pipeline builds;
// hosts normally never implement it, but tests may substitute their own
// (for example one backed by mcp.NewInMemoryTransports).
type TransportFactory interface {
	NewTransport() mcp.Transport
}

// ClientConfig is the validated, resolved configuration for one fleet
// server.
//
// The exported fields form the mutation window: a caller may adjust them
// after Load and before NewClient. Once a client handle exists the config
// should be treated as frozen; ClientConfig is not internally synchronized.
type ClientConfig struct {
	name      string
	transport TransportFactory

	// StartupTimeout bounds how long Client.Start waits for the transport
	// to connect. Must be positive.
	StartupTimeout time.Duration

	// Filters restricts which of the server's tools are surfaced. Nil means
	// every tool passes.
	Filters *ToolFilters

	// Prefix is the server's effective tool-name prefix. Empty disables
	// prefixing.
	Prefix string
}

// Name returns the server's name, the entry's key in the fleet document.
func (c *ClientConfig) Name() string {
	return c.name
}

// Transport returns the configuration's transport factory.
func (c *ClientConfig) Transport() TransportFactory {
	return c.transport
}

// NewClient materializes an unconnected client handle from this
// configuration. The handle snapshots the configuration's current values;
// later mutation of the config does not affect it.
//
// NewClient may be called multiple times: the resulting handles share the
// logical configuration but no connection state.
func (c *ClientConfig) NewClient() *Client {
	return &Client{
		name:           c.name,
		transport:      c.transport,
		startupTimeout: c.StartupTimeout,
		filters:        c.Filters,
		prefix:         c.Prefix,
	}
}
