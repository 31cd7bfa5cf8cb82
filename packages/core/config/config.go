package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the callsy configuration
type Config struct {
	RequestFile  string `json:"requestFile,omitempty" yaml:"requestFile,omitempty"`
	ResponseFile string `json:"responseFile,omitempty" yaml:"responseFile,omitempty"`
	BodyFile     string `json:"bodyFile,omitempty" yaml:"bodyFile,omitempty"` // raw response body, disabled when empty
	Pretty       *bool  `json:"pretty,omitempty" yaml:"pretty,omitempty"`
	Interactive  *bool  `json:"interactive,omitempty" yaml:"interactive,omitempty"` // ask before overwriting
	Verbose      int    `json:"verbose,omitempty" yaml:"verbose,omitempty"`         // 0=off, 1=info, 2=debug, 3=trace
	NoColor      *bool  `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// LoadError reports a config file that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config error: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetPretty returns the pretty setting, defaulting to false
func (c *Config) GetPretty() bool {
	return getBool(c.Pretty, false)
}

// GetInteractive returns the interactive setting, defaulting to false
func (c *Config) GetInteractive() bool {
	return getBool(c.Interactive, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// LoadConfig loads configuration from path. An empty path yields the
// defaults; callsy never searches for a config file on its own.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return config, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.RequestFile != "" {
		result.RequestFile = other.RequestFile
	}
	if other.ResponseFile != "" {
		result.ResponseFile = other.ResponseFile
	}
	if other.BodyFile != "" {
		result.BodyFile = other.BodyFile
	}
	if other.Verbose > 0 {
		result.Verbose = other.Verbose
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Pretty != nil {
		result.Pretty = other.Pretty
	}
	if other.Interactive != nil {
		result.Interactive = other.Interactive
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}

// SaveConfig saves the configuration to a file, as YAML when the extension
// says so and JSON otherwise
func (c *Config) SaveConfig(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
