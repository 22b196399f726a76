// Package naming resolves the tool-name prefix policy for fleet servers.
//
// Prefixing disambiguates identically-named tools across servers: a tool
// "get_weather" on server "weather" surfaces as "weather_get_weather" by
// default. A global prefix pushes a further qualifier in front, and an
// explicitly empty global prefix disables prefixing entirely, leaving the
// caller to accept the collision risk.
package naming

import "strings"

// ResolvePrefix computes a server's effective tool-name prefix.
//
// A nil global prefix yields the server name alone. A non-empty global
// prefix yields "{global}_{serverName}". An explicitly empty global prefix
// yields the empty prefix (no prefixing).
func ResolvePrefix(serverName string, global *string) string {
	switch {
	case global == nil:
		return serverName
	case *global == "":
		return ""
	default:
		return *global + "_" + serverName
	}
}

// Join combines an effective prefix with an original tool name. An empty
// prefix returns the tool name unchanged.
func Join(prefix, tool string) string {
	if prefix == "" {
		return tool
	}
	return prefix + "_" + tool
}

// Strip undoes Join: it removes the effective prefix from a surfaced tool
// name, reporting whether the name carried the prefix. With an empty prefix
// every name matches unchanged.
func Strip(prefix, name string) (string, bool) {
	if prefix == "" {
		return name, true
	}
	original, found := strings.CutPrefix(name, prefix+"_")
	if !found || original == "" {
		return "", false
	}
	return original, true
}
