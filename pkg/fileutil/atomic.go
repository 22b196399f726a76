// Package fileutil provides filesystem helpers shared by the CLI:
// atomic writes with per-format encoders, and size-limited reads.
package fileutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Fleet documents can carry credentials in env and header values, so
// the convenience writers default to owner-only permissions.
const defaultPerm = 0o600

// AtomicWriteFile replaces path with data via a same-directory temp
// file and rename, so an interrupted write never leaves a partial
// file behind. The parent directory must already exist; perm applies
// to the final file.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mcpfleet-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	name := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(name)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err = tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting permissions")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err = os.Rename(name, path); err != nil {
		return errors.Wrap(err, "replacing file")
	}
	return nil
}

func ensureNewline(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data
}

// AtomicWriteJSONWithPerm writes v as two-space-indented JSON with a
// trailing newline.
func AtomicWriteJSONWithPerm(path string, v any, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return AtomicWriteFile(path, append(data, '\n'), perm)
}

// AtomicWriteJSON is AtomicWriteJSONWithPerm with the default permissions.
func AtomicWriteJSON(path string, v any) error {
	return AtomicWriteJSONWithPerm(path, v, defaultPerm)
}

// AtomicWriteYAMLWithPerm writes v as YAML with a trailing newline.
func AtomicWriteYAMLWithPerm(path string, v any, perm os.FileMode) (err error) {
	// yaml.Marshal panics on unencodable types.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("encoding YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	return AtomicWriteFile(path, ensureNewline(data), perm)
}

// AtomicWriteYAML is AtomicWriteYAMLWithPerm with the default permissions.
func AtomicWriteYAML(path string, v any) error {
	return AtomicWriteYAMLWithPerm(path, v, defaultPerm)
}

// AtomicWriteTOMLWithPerm writes v as TOML with a trailing newline.
func AtomicWriteTOMLWithPerm(path string, v any, perm os.FileMode) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return errors.Wrap(err, "encoding TOML")
	}
	return AtomicWriteFile(path, ensureNewline(buf.Bytes()), perm)
}

// AtomicWriteTOML is AtomicWriteTOMLWithPerm with the default permissions.
func AtomicWriteTOML(path string, v any) error {
	return AtomicWriteTOMLWithPerm(path, v, defaultPerm)
}
