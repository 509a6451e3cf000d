package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"karasync/internal/timing"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir  string `toml:"output_dir"`
	LogDir     string `toml:"log_dir"`
	HistoryDir string `toml:"history_dir"`
}

// Timing contains the synchronization engine constants, all in seconds
// except min_token_length.
type Timing struct {
	MinLineDuration       float64 `toml:"min_line_duration"`
	GlobalOffsetThreshold float64 `toml:"global_offset_threshold"`
	WindowMargin          float64 `toml:"window_margin"`
	MinTokenLength        int     `toml:"min_token_length"`
	DefaultLineGap        float64 `toml:"default_line_gap"`
}

// History contains configuration for the run history store.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the complete application configuration.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Timing  Timing  `toml:"timing"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the standard configuration file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "karasync", "config.toml"), nil
}

// Load reads configuration from path, overlaying repository defaults. An
// empty path uses the default location; a missing file at the default
// location is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Defaults only.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the annotated sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// TimingOptions converts the timing section into engine options.
func (c *Config) TimingOptions() timing.Options {
	return timing.Options{
		MinLineDuration:       c.Timing.MinLineDuration,
		GlobalOffsetThreshold: c.Timing.GlobalOffsetThreshold,
		WindowMargin:          c.Timing.WindowMargin,
		MinTokenLength:        c.Timing.MinTokenLength,
		DefaultLineGap:        c.Timing.DefaultLineGap,
	}
}

// EnsureDirectories creates the configured output, log, and history
// directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir, c.Paths.HistoryDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure directory %s: %w", dir, err)
		}
	}
	return nil
}
