package fleet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// memoryFactory serves a fixed set of tools over an in-memory transport.
// Every NewTransport call spins up a fresh server, so restarted handles
// and sibling handles built from the same config never share a session.
type memoryFactory struct {
	tools []string
}

func (f *memoryFactory) NewTransport() mcp.Transport {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "memory-server",
		Version: "1.0.0",
	}, nil)
	for _, name := range f.tools {
		tool := name
		mcp.AddTool(server, &mcp.Tool{
			Name:        tool,
			Description: "in-memory test tool",
		}, func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{Text: "echo from " + tool},
				},
			}, nil, nil
		})
	}

	go server.Run(context.Background(), serverTransport)
	return clientTransport
}

func memoryConfig(t *testing.T, tools []string, filters *ToolFilters, prefix string) *ClientConfig {
	t.Helper()
	return &ClientConfig{
		name:           "memory",
		transport:      &memoryFactory{tools: tools},
		StartupTimeout: 5 * time.Second,
		Filters:        filters,
		Prefix:         prefix,
	}
}

func TestClient_Lifecycle(t *testing.T) {
	ctx := context.Background()
	client := memoryConfig(t, []string{"echo"}, nil, "memory").NewClient()

	if client.Started() {
		t.Fatal("Started() = true before Start")
	}
	if _, err := client.ListTools(ctx); !errors.Is(err, ErrNotStarted) {
		t.Errorf("ListTools() before Start error = %v, want ErrNotStarted", err)
	}
	if _, err := client.CallTool(ctx, "memory_echo", nil); !errors.Is(err, ErrNotStarted) {
		t.Errorf("CallTool() before Start error = %v, want ErrNotStarted", err)
	}

	if err := client.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !client.Started() {
		t.Error("Started() = false after Start")
	}
	if err := client.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if client.Started() {
		t.Error("Started() = true after Close")
	}

	// Closing an unstarted handle is a no-op.
	if err := client.Close(); err != nil {
		t.Errorf("Close() on stopped handle error = %v", err)
	}

	// A closed handle can be started again on a fresh session.
	if err := client.Start(ctx); err != nil {
		t.Fatalf("restart error = %v", err)
	}
	defer client.Close()

	tools, err := client.ListTools(ctx)
	if err != nil {
		t.Fatalf("ListTools() after restart error = %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "memory_echo" {
		t.Errorf("ListTools() = %v, want [memory_echo]", toolNames(tools))
	}
}

func TestClient_ListToolsPrefixAndFilter(t *testing.T) {
	ctx := context.Background()
	filters := &ToolFilters{
		Allowed:  []string{"read_file", "write_file"},
		Rejected: []string{"write_file"},
	}
	client := memoryConfig(t, []string{"read_file", "write_file", "delete_file"}, filters, "fs").NewClient()

	if err := client.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer client.Close()

	tools, err := client.ListTools(ctx)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "fs_read_file" {
		t.Errorf("ListTools() = %v, want [fs_read_file]", toolNames(tools))
	}
}

func TestClient_ListToolsNoPrefix(t *testing.T) {
	ctx := context.Background()
	client := memoryConfig(t, []string{"echo"}, nil, "").NewClient()

	if err := client.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer client.Close()

	tools, err := client.ListTools(ctx)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "echo" {
		t.Errorf("ListTools() = %v, want [echo]", toolNames(tools))
	}
}

func TestClient_CallTool(t *testing.T) {
	ctx := context.Background()
	filters := &ToolFilters{Rejected: []string{"blocked"}}
	client := memoryConfig(t, []string{"echo", "blocked"}, filters, "memory").NewClient()

	if err := client.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer client.Close()

	result, err := client.CallTool(ctx, "memory_echo", map[string]any{"input": "hi"})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok || text.Text != "echo from echo" {
		t.Errorf("CallTool() content = %#v, want echo from echo", result.Content[0])
	}

	tests := []struct {
		name string
		tool string
	}{
		{name: "unprefixed name rejected", tool: "echo"},
		{name: "filtered tool rejected", tool: "memory_blocked"},
		{name: "unknown prefix rejected", tool: "other_echo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.CallTool(ctx, tt.tool, nil); !errors.Is(err, ErrToolNotFound) {
				t.Errorf("CallTool(%q) error = %v, want ErrToolNotFound", tt.tool, err)
			}
		})
	}
}

func TestClient_IndependentHandles(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t, []string{"echo"}, nil, "memory")

	first := cfg.NewClient()
	second := cfg.NewClient()

	if err := first.Start(ctx); err != nil {
		t.Fatalf("first Start() error = %v", err)
	}
	defer first.Close()

	if second.Started() {
		t.Error("starting one handle started its sibling")
	}
	if err := second.Start(ctx); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	defer second.Close()

	if err := first.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if _, err := second.ListTools(ctx); err != nil {
		t.Errorf("second handle broken by closing the first: %v", err)
	}
}

func TestClient_ConfigMutationAfterNewClient(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t, []string{"echo"}, nil, "before")
	client := cfg.NewClient()

	// Later edits to the config must not leak into existing handles.
	cfg.Prefix = "after"
	cfg.Filters = &ToolFilters{Rejected: []string{"echo"}}

	if err := client.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer client.Close()

	tools, err := client.ListTools(ctx)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "before_echo" {
		t.Errorf("ListTools() = %v, want [before_echo]", toolNames(tools))
	}
}

func toolNames(tools []*mcp.Tool) []string {
	out := make([]string, len(tools))
	for i, tool := range tools {
		out[i] = tool.Name
	}
	return out
}
