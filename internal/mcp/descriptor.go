package mcp

import "maps"

// Transport kind constants for MCP server communication.
const (
	// TransportStdio indicates a local subprocess reached over stdin/stdout.
	TransportStdio = "stdio"

	// TransportSSE indicates a remote server reached over Server-Sent Events.
	TransportSSE = "sse"

	// TransportStreamableHTTP indicates a remote server reached over the
	// streamable HTTP transport.
	TransportStreamableHTTP = "streamable-http"
)

// ServerDescriptor is the validated form of one mcpServers entry. The Kind
// field discriminates the variant and is set exactly once by a constructor;
// only the fields belonging to that variant are populated.
type ServerDescriptor struct {
	// Name is the server's unique key in the fleet document.
	Name string

	// Kind is one of TransportStdio, TransportSSE, TransportStreamableHTTP.
	Kind string

	// Command, Args, and Env describe a stdio server.
	Command string
	Args    []string
	Env     map[string]string

	// URL and Headers describe a network (sse or streamable-http) server.
	URL     string
	Headers map[string]string
}

// NewStdioDescriptor returns a descriptor for a local stdio server.
// Args and env are copied; the caller's slices and maps are not retained.
func NewStdioDescriptor(name, command string, args []string, env map[string]string) *ServerDescriptor {
	d := &ServerDescriptor{
		Name:    name,
		Kind:    TransportStdio,
		Command: command,
	}
	if len(args) > 0 {
		d.Args = append([]string(nil), args...)
	}
	if len(env) > 0 {
		d.Env = maps.Clone(env)
	}
	return d
}

// NewSSEDescriptor returns a descriptor for a remote SSE server.
func NewSSEDescriptor(name, url string, headers map[string]string) *ServerDescriptor {
	return newNetworkDescriptor(name, TransportSSE, url, headers)
}

// NewStreamableHTTPDescriptor returns a descriptor for a remote streamable
// HTTP server.
func NewStreamableHTTPDescriptor(name, url string, headers map[string]string) *ServerDescriptor {
	return newNetworkDescriptor(name, TransportStreamableHTTP, url, headers)
}

func newNetworkDescriptor(name, kind, url string, headers map[string]string) *ServerDescriptor {
	d := &ServerDescriptor{
		Name: name,
		Kind: kind,
		URL:  url,
	}
	if len(headers) > 0 {
		d.Headers = maps.Clone(headers)
	}
	return d
}

// IsStdio reports whether this descriptor names a local stdio server.
func (d *ServerDescriptor) IsStdio() bool {
	return d.Kind == TransportStdio
}

// IsNetwork reports whether this descriptor names a remote server reached
// over SSE or streamable HTTP.
func (d *ServerDescriptor) IsNetwork() bool {
	return d.Kind == TransportSSE || d.Kind == TransportStreamableHTTP
}
