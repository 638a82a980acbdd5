// Package config holds the tool configuration and its YAML loader.
// Configuration is populated from a file and CLI flags and passed down
// by dependency injection; the core packages never read it directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".quadric.yaml"

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers decide whether that is fatal based on whether the
// path was explicitly specified.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config holds all configurable options.
type Config struct {
	// DiameterThreshold is the cylinder diameter above which the
	// statistics sub-count increments, in model length units.
	DiameterThreshold float64 `yaml:"diameter_threshold"`

	// ConeAxisHalfLength is the half-length of cone axis indicator
	// segments, in model length units.
	ConeAxisHalfLength float64 `yaml:"cone_axis_half_length"`

	// Document is the path of the SQLite annotation document.
	Document string `yaml:"document"`
}

// Default returns the configuration defaults. The document path lives
// under the XDG data directory.
func Default() *Config {
	return &Config{
		DiameterThreshold:  3.2,
		ConeAxisHalfLength: 2.5,
		Document:           filepath.Join(xdg.DataHome, "quadric", "annotations.db"),
	}
}

// Load reads a YAML configuration file and overlays it on the
// defaults. A missing file yields ErrConfigNotFound.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find locates the configuration file: an explicit path wins, then
// DefaultConfigFile in the current directory, then in the home
// directory. Returns "" when none exists.
func Find(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks option values.
func (c *Config) Validate() error {
	if c.DiameterThreshold < 0 {
		return fmt.Errorf("diameter_threshold must be non-negative, got %g", c.DiameterThreshold)
	}
	if c.ConeAxisHalfLength <= 0 {
		return fmt.Errorf("cone_axis_half_length must be positive, got %g", c.ConeAxisHalfLength)
	}
	return nil
}
