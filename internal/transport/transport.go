// Package transport turns validated server descriptors into deferred
// transport factories for the MCP go-sdk.
//
// Building a factory performs no process or network activity; all I/O is
// deferred to the eventual NewTransport call, which is the host runtime's
// responsibility when it starts a client.
package transport

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	mcpcfg "github.com/thoreinstein/mcpfleet/internal/mcp"
)

// Factory is a deferred, zero-argument transport constructor bound to one
// server's connection details.
//
// Factories are pure with respect to configuration: NewTransport may be
// called any number of times and each call returns an independent,
// unconnected transport. For stdio servers the subprocess environment is
// computed at call time, so ambient environment changes made between
// configuration load and client start are honored.
type Factory interface {
	NewTransport() mcp.Transport
}

// Build converts a validated descriptor into a transport factory.
func Build(d *mcpcfg.ServerDescriptor) (Factory, error) {
	switch d.Kind {
	case mcpcfg.TransportStdio:
		return &stdioFactory{command: d.Command, args: d.Args, env: d.Env}, nil
	case mcpcfg.TransportSSE:
		return &sseFactory{endpoint: d.URL, headers: d.Headers}, nil
	case mcpcfg.TransportStreamableHTTP:
		return &streamableFactory{endpoint: d.URL, headers: d.Headers}, nil
	default:
		return nil, fmt.Errorf("unsupported transport kind %q", d.Kind)
	}
}

type stdioFactory struct {
	command string
	args    []string
	env     map[string]string
}

func (f *stdioFactory) NewTransport() mcp.Transport {
	cmd := exec.Command(f.command, f.args...)
	cmd.Env = MergeEnviron(os.Environ(), f.env)
	return &mcp.CommandTransport{Command: cmd}
}

type sseFactory struct {
	endpoint string
	headers  map[string]string
}

func (f *sseFactory) NewTransport() mcp.Transport {
	return &mcp.SSEClientTransport{
		Endpoint:   f.endpoint,
		HTTPClient: httpClientFor(f.headers),
	}
}

type streamableFactory struct {
	endpoint string
	headers  map[string]string
}

func (f *streamableFactory) NewTransport() mcp.Transport {
	return &mcp.StreamableClientTransport{
		Endpoint:   f.endpoint,
		HTTPClient: httpClientFor(f.headers),
	}
}

// MergeEnviron overlays a server's env mapping onto the ambient process
// environment. Overlay values win key by key; ambient ordering is preserved
// and overlay-only keys are appended in sorted order.
func MergeEnviron(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(overlay))
	seen := make(map[string]bool, len(overlay))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if value, ok := overlay[key]; ok {
			merged = append(merged, key+"="+value)
			seen[key] = true
			continue
		}
		merged = append(merged, kv)
	}

	extra := make([]string, 0, len(overlay))
	for key, value := range overlay {
		if !seen[key] {
			extra = append(extra, key+"="+value)
		}
	}
	sort.Strings(extra)

	return append(merged, extra...)
}

// headerTransport injects fixed headers into every outgoing request, for
// fleet documents that carry auth headers for remote servers.
type headerTransport struct {
	rt      http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.rt.RoundTrip(req)
}

func httpClientFor(headers map[string]string) *http.Client {
	if len(headers) == 0 {
		// Let the SDK fall back to its default client.
		return nil
	}
	return &http.Client{
		Transport: &headerTransport{
			rt:      http.DefaultTransport,
			headers: headers,
		},
	}
}
