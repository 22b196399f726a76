package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrNegativeTimeout indicates default_timeout is negative.
	ErrNegativeTimeout = errors.New("default_timeout must not be negative")

	// ErrInvalidLogFormat indicates an unrecognized log_format value.
	ErrInvalidLogFormat = errors.New("log_format must be \"text\" or \"json\"")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.DefaultTimeout < 0 {
		errs = append(errs, ErrNegativeTimeout)
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, ErrInvalidLogFormat)
	}

	if cfg.DefaultDocument != "" {
		if err := validatePath(cfg.DefaultDocument); err != nil {
			errs = append(errs, &PathError{
				Field: "default_document",
				Path:  cfg.DefaultDocument,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
