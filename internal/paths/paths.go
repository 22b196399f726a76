package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is used for XDG subdirectories and config file naming.
const AppName = "mcpfleet"

// DocumentName is the conventional fleet document filename.
const DocumentName = "mcp.json"

// Alternate fleet document filenames, checked in order after DocumentName.
var alternateDocumentNames = []string{
	"mcp.yaml",
	"mcp.yml",
	"mcp.toml",
}

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrNoDocument indicates no fleet document exists in any search location.
	ErrNoDocument = errors.New("no fleet document found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// Note: It returns an empty string on error. Use ResolveHome for proper
// error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
func DataHome() string {
	return xdg.DataHome
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns the mcpfleet config directory: <ConfigHome>/mcpfleet/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DefaultDocumentPath returns the user-level fleet document location:
// <ConfigHome>/mcpfleet/mcp.json
func DefaultDocumentPath() string {
	return filepath.Join(ConfigDir(), DocumentName)
}

// DocumentSearchPaths returns the locations checked when no document path
// is given, in order of precedence. The working directory wins over the
// user-level config directory.
func DocumentSearchPaths() []string {
	out := make([]string, 0, len(alternateDocumentNames)+2)
	out = append(out, DocumentName)
	out = append(out, alternateDocumentNames...)
	out = append(out, DefaultDocumentPath())
	return out
}

// FindDocument returns the first fleet document that exists among the
// search locations. Returns ErrNoDocument when none exists.
func FindDocument() (string, error) {
	for _, candidate := range DocumentSearchPaths() {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return candidate, nil
		}
		return abs, nil
	}
	return "", ErrNoDocument
}
