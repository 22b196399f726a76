package fleet

import (
	"errors"

	"github.com/thoreinstein/mcpfleet/internal/mcp"
)

// Re-exported loading sentinels. These are the same values the internal
// pipeline wraps, so errors.Is works across package boundaries.
var (
	// ErrNotFound indicates a missing fleet document or a requested server
	// name absent from it.
	ErrNotFound = mcp.ErrNotFound

	// ErrParse indicates a syntactically malformed fleet document.
	ErrParse = mcp.ErrParse

	// ErrSchema indicates a structurally invalid document or entry.
	ErrSchema = mcp.ErrSchema

	// ErrConflict indicates an entry mixing stdio and network discriminators.
	ErrConflict = mcp.ErrConflict
)

// Client lifecycle sentinels.
var (
	// ErrAlreadyStarted indicates Start was called on a connected client.
	ErrAlreadyStarted = errors.New("client already started")

	// ErrNotStarted indicates an operation that needs a session was called
	// before Start.
	ErrNotStarted = errors.New("client not started")

	// ErrToolNotFound indicates a tool name that does not route to the
	// client's server, either because it lacks the effective prefix or
	// because the tool is excluded by the server's filters.
	ErrToolNotFound = errors.New("tool not found")
)
