// Package config handles configuration loading and management for callsy.
//
// It provides functionality for:
//   - Loading configuration from JSON or YAML files
//   - Default configuration values
//   - Merging file values with command line overrides
package config
