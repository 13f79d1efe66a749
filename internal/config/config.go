// Package config reads and writes seaside configuration.
// Supports both global (~/.seaside/config.yaml) and local (.seaside/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.seaside/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is catalog-specific config in .seaside/config.yaml
	ScopeLocal
)

// Rendering styles for report.style.
const (
	StyleUnicode = "unicode"
	StyleASCII   = "ascii"
)

// Author identifies who writes catalog entries.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Report holds tree rendering defaults. Command flags override them.
type Report struct {
	Order        string `yaml:"order,omitempty"`
	Style        string `yaml:"style,omitempty"`
	Descriptions *bool  `yaml:"descriptions,omitempty"`
}

// Limits bounds the paths accepted on add and import.
type Limits struct {
	MaxDepth *int `yaml:"max_depth,omitempty"`
	MaxPath  *int `yaml:"max_path,omitempty"`
}

// Default limits applied when not configured.
const (
	DefaultMaxDepth = 32
	DefaultMaxPath  = 1024
)

// Validation bounds for configuration values.
const (
	MinMaxDepth = 1
	MaxMaxDepth = 1024
	MinMaxPath  = 1
	MaxMaxPath  = 65536
)

// Config contains configuration for seaside.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Report Report `yaml:"report,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Unset values are valid; defaults apply.
func (c *Config) Validate() error {
	if c.Report.Order != "" {
		if _, err := tree.ParseOrder(c.Report.Order); err != nil {
			return fmt.Errorf("%w: report.order must be %s or %s, got %q",
				ErrInvalidValue, tree.OrderName, tree.OrderInsertion, c.Report.Order)
		}
	}
	if s := c.Report.Style; s != "" && s != StyleUnicode && s != StyleASCII {
		return fmt.Errorf("%w: report.style must be %s or %s, got %q",
			ErrInvalidValue, StyleUnicode, StyleASCII, s)
	}
	if c.Limits.MaxDepth != nil {
		v := *c.Limits.MaxDepth
		if v < MinMaxDepth || v > MaxMaxDepth {
			return fmt.Errorf("%w: max_depth must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxDepth, MaxMaxDepth, v)
		}
	}
	if c.Limits.MaxPath != nil {
		v := *c.Limits.MaxPath
		if v < MinMaxPath || v > MaxMaxPath {
			return fmt.Errorf("%w: max_path must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxPath, MaxMaxPath, v)
		}
	}
	return nil
}

// Order returns the configured sibling order name (defaults to "name").
func (c *Config) Order() string {
	if c.Report.Order == "" {
		return tree.OrderName
	}
	return c.Report.Order
}

// Style returns the configured connector style (defaults to "unicode").
func (c *Config) Style() string {
	if c.Report.Style == "" {
		return StyleUnicode
	}
	return c.Report.Style
}

// Descriptions reports whether trees show descriptions (defaults to false).
func (c *Config) Descriptions() bool {
	return c.Report.Descriptions != nil && *c.Report.Descriptions
}

// MaxDepth returns the maximum number of path segments (defaults to 32).
func (c *Config) MaxDepth() int {
	if c.Limits.MaxDepth == nil {
		return DefaultMaxDepth
	}
	return *c.Limits.MaxDepth
}

// MaxPath returns the maximum canonical path length in bytes (defaults to 1024).
func (c *Config) MaxPath() int {
	if c.Limits.MaxPath == nil {
		return DefaultMaxPath
	}
	return *c.Limits.MaxPath
}

// LocalPath returns the path to the local (catalog) config file.
func LocalPath() string {
	return filepath.Join(".seaside", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.seaside/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seaside", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
