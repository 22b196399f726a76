// Package config provides configuration management for the mcpfleet CLI.
//
// This package handles the tool's own configuration file. It is distinct
// from fleet documents (mcp.json), which describe the servers themselves
// and are handled by the loader.
//
// # Configuration File
//
// The default configuration file location is <ConfigHome>/mcpfleet/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	default_timeout: 30s
//	log_format: text
//	default_document: /srv/fleet/mcp.json  # optional
//
// Values can also be supplied through MCPFLEET_* environment variables,
// for example MCPFLEET_DEFAULT_TIMEOUT=10s.
//
// # Validation
//
// Use [Validate] to check a loaded configuration:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
