package logging

import "strings"

// Attribute keys whose values are never safe to print verbatim.
var sensitiveKeys = map[string]bool{
	"authorization": true,
	"token":         true,
	"api_key":       true,
	"apikey":        true,
	"secret":        true,
	"password":      true,
}

// Value prefixes that identify bearer credentials regardless of key name.
var tokenPrefixes = []string{
	"Bearer ",
	"sk-",
	"ghp_",
	"gho_",
}

// shouldMask reports whether an attribute key names a credential.
func shouldMask(key string) bool {
	return sensitiveKeys[strings.ToLower(key)]
}

// containsTokenPrefix reports whether a value looks like a credential.
func containsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.Contains(value, prefix) {
			return true
		}
	}
	return false
}

// maskValue hides a credential, keeping only the last four characters.
func maskValue(value string) string {
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
