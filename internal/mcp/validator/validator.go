package validator

import (
	"net/url"

	"github.com/thoreinstein/mcpfleet/internal/mcp"
)

// Validate checks one raw mcpServers entry and returns its validated
// descriptor.
//
// The variant is discriminated by field presence: "command" selects stdio,
// "transport" (sse or streamable-http) selects a network variant, and a bare
// "url" defaults to SSE. An entry carrying both stdio and network
// discriminators fails with mcp.ErrConflict; an entry carrying neither fails
// with mcp.ErrSchema. Unrecognized keys are ignored for forward
// compatibility.
func Validate(name string, fields map[string]any) (*mcp.ServerDescriptor, error) {
	_, hasCommand := fields["command"]
	_, hasTransport := fields["transport"]
	_, hasURL := fields["url"]

	switch {
	case hasCommand && (hasTransport || hasURL):
		return nil, &ValidationError{
			Server:  name,
			Field:   "command",
			Message: "entry mixes stdio and network fields; specify either command or transport/url",
			Err:     mcp.ErrConflict,
		}
	case hasCommand:
		return validateStdio(name, fields)
	case hasTransport:
		return validateNetwork(name, fields)
	case hasURL:
		// A bare url with no explicit transport defaults to SSE.
		return validateNetworkKind(name, mcp.TransportSSE, fields)
	default:
		return nil, schemaErr(name, "",
			"cannot determine transport: entry needs a %q field (stdio) or a %q field (sse, streamable-http)",
			"command", "transport")
	}
}

func validateStdio(name string, fields map[string]any) (*mcp.ServerDescriptor, error) {
	command, ok := fields["command"].(string)
	if !ok || command == "" {
		return nil, schemaErr(name, "command", "must be a non-empty string")
	}

	var args []string
	if raw, present := fields["args"]; present {
		list, ok := raw.([]any)
		if !ok {
			return nil, schemaErr(name, "args", "must be a sequence of strings")
		}
		args = make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, schemaErr(name, "args", "element %d must be a string", i)
			}
			args[i] = s
		}
	}

	env, err := stringMap(name, "env", fields)
	if err != nil {
		return nil, err
	}

	return mcp.NewStdioDescriptor(name, command, args, env), nil
}

func validateNetwork(name string, fields map[string]any) (*mcp.ServerDescriptor, error) {
	transport, ok := fields["transport"].(string)
	if !ok {
		return nil, schemaErr(name, "transport", "must be a string")
	}

	switch transport {
	case mcp.TransportSSE, mcp.TransportStreamableHTTP:
		return validateNetworkKind(name, transport, fields)
	default:
		return nil, schemaErr(name, "transport",
			"unknown transport %q (must be %q or %q)", transport, mcp.TransportSSE, mcp.TransportStreamableHTTP)
	}
}

func validateNetworkKind(name, kind string, fields map[string]any) (*mcp.ServerDescriptor, error) {
	raw, present := fields["url"]
	if !present {
		return nil, schemaErr(name, "url", "required for %s transport", kind)
	}
	endpoint, ok := raw.(string)
	if !ok || endpoint == "" {
		return nil, schemaErr(name, "url", "must be a non-empty string")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, schemaErr(name, "url", "%q is not an absolute URL", endpoint)
	}

	headers, err := stringMap(name, "headers", fields)
	if err != nil {
		return nil, err
	}

	if kind == mcp.TransportSSE {
		return mcp.NewSSEDescriptor(name, endpoint, headers), nil
	}
	return mcp.NewStreamableHTTPDescriptor(name, endpoint, headers), nil
}

// stringMap extracts an optional string-to-string mapping field.
func stringMap(name, field string, fields map[string]any) (map[string]string, error) {
	raw, present := fields[field]
	if !present {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, schemaErr(name, field, "must be a mapping of string to string")
	}
	result := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, schemaErr(name, field, "value for %q must be a string", k)
		}
		result[k] = s
	}
	return result, nil
}
