package commands

import "strings"

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// secretKeyPatterns contains substrings that indicate a key likely contains a secret.
var secretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"API_KEY",
}

// maskSecrets masks secret values in env or header maps.
// If showSecrets is true, returns the original map unchanged.
// Secret detection is based on key names containing common secret indicators.
func maskSecrets(values map[string]string, showSecrets bool) map[string]string {
	if values == nil {
		return nil
	}
	if showSecrets {
		return values
	}

	masked := make(map[string]string, len(values))
	for k, v := range values {
		upper := strings.ToUpper(k)
		isSecret := false
		for _, pattern := range secretKeyPatterns {
			if strings.Contains(upper, pattern) {
				isSecret = true
				break
			}
		}
		if isSecret && len(v) > 4 {
			masked[k] = "****" + v[len(v)-4:]
		} else if isSecret {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}
	return masked
}
