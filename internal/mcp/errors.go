package mcp

import "errors"

// Sentinel errors for the loading pipeline. Typed errors in the loader and
// validator packages wrap these so callers can classify failures without
// depending on message text.
var (
	// ErrNotFound indicates the fleet document does not exist, or a server
	// name requested by the caller is absent from the document.
	ErrNotFound = errors.New("not found")

	// ErrParse indicates the fleet document is not syntactically valid.
	ErrParse = errors.New("malformed fleet document")

	// ErrSchema indicates the document or one of its entries is structurally
	// invalid: missing mcpServers, missing discriminator fields, wrong field
	// types, invalid URLs, or a non-positive startup timeout.
	ErrSchema = errors.New("invalid fleet configuration")

	// ErrConflict indicates a server entry specifies both stdio and network
	// discriminator fields.
	ErrConflict = errors.New("conflicting transport discriminators")
)
