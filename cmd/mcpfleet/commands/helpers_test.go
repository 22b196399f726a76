package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short string unchanged", "uvx", 10, "uvx"},
		{"exact length unchanged", "12345", 5, "12345"},
		{"long string truncated", "mcp-server-weather", 10, "mcp-ser..."},
		{"tiny limit", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.maxLen))
		})
	}
}

func TestMaskSecrets(t *testing.T) {
	in := map[string]string{
		"API_KEY":    "supersecret1234",
		"AUTH_TOKEN": "abc",
		"REGION":     "us-east-1",
	}

	masked := maskSecrets(in, false)
	assert.Equal(t, "****1234", masked["API_KEY"])
	assert.Equal(t, "********", masked["AUTH_TOKEN"], "short secrets are fully masked")
	assert.Equal(t, "us-east-1", masked["REGION"], "non-secret keys pass through")

	assert.Equal(t, in, maskSecrets(in, true), "show-secrets returns values unchanged")
	assert.Nil(t, maskSecrets(nil, false))
}
