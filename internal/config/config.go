// Package config loads launcher settings and extra keypad layouts from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/infinity/keypad"
)

var (
	// ErrBadLogLevel indicates an unrecognized log_level value.
	ErrBadLogLevel = errors.New("config: log level must be debug, info, warn or error")
	// ErrNoOrigin indicates a layout without origin or origin_key.
	ErrNoOrigin = errors.New("config: layout needs origin or origin_key")
)

// Config is the top-level configuration file.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	NoColor  bool           `yaml:"no_color"`
	Layouts  []LayoutConfig `yaml:"layouts"`
}

// LayoutConfig describes one keypad. Rows hold labels; ~ or "" marks a
// placeholder cell. The origin is given either by coordinates or by label.
type LayoutConfig struct {
	Name      string     `yaml:"name"`
	Rows      [][]string `yaml:"rows"`
	Origin    *Origin    `yaml:"origin,omitempty"`
	OriginKey string     `yaml:"origin_key,omitempty"`
}

// Origin is a zero-based (row, col) cell address.
type Origin struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Load reads the YAML file at path. An empty path yields Default().
// A path that does not exist is an error: it was asked for explicitly.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// DefaultPath returns the per-user config file, <UserConfigDir>/infinity/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "infinity", "config.yaml"), nil
}

// LoadDefault loads DefaultPath() when that file exists and yields Default()
// when it does not or no user config directory is known. A file that exists
// but does not parse is still an error.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML bytes on top of Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level maps LogLevel to a slog.Level; empty means warn.
func (c *Config) Level() (slog.Level, error) {
	return ParseLevel(c.LogLevel)
}

// ParseLevel maps a level name to a slog.Level; empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("%q: %w", s, ErrBadLogLevel)
	}
}

// Registry returns the built-in layouts followed by the configured ones.
// A configured layout reusing a built-in name is rejected.
func (c *Config) Registry() (*keypad.Registry, error) {
	reg := keypad.DefaultRegistry()
	for i, lc := range c.Layouts {
		l, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("layouts[%d]: %w", i, err)
		}
		if err = reg.Register(l); err != nil {
			return nil, fmt.Errorf("layouts[%d]: %w", i, err)
		}
	}
	return reg, nil
}

// Build validates lc and turns it into a keypad.Layout.
func (lc LayoutConfig) Build() (*keypad.Layout, error) {
	switch {
	case lc.Origin != nil:
		return keypad.NewLayout(lc.Name, lc.Rows, keypad.Position{Row: lc.Origin.Row, Col: lc.Origin.Col})
	case lc.OriginKey != "":
		for r, row := range lc.Rows {
			for col, v := range row {
				if v == lc.OriginKey {
					return keypad.NewLayout(lc.Name, lc.Rows, keypad.Position{Row: r, Col: col})
				}
			}
		}
		return nil, fmt.Errorf("layout %q: origin_key %q: %w", lc.Name, lc.OriginKey, keypad.ErrOriginInvalid)
	default:
		return nil, fmt.Errorf("layout %q: %w", lc.Name, ErrNoOrigin)
	}
}
