package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTiming(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTiming() error {
	if c.Timing.MinLineDuration <= 0 {
		return errors.New("timing.min_line_duration must be positive")
	}
	if c.Timing.GlobalOffsetThreshold < 0 {
		return errors.New("timing.global_offset_threshold must not be negative")
	}
	if c.Timing.WindowMargin < 0 {
		return errors.New("timing.window_margin must not be negative")
	}
	if c.Timing.MinTokenLength < 1 {
		return errors.New("timing.min_token_length must be at least 1")
	}
	if c.Timing.DefaultLineGap <= 0 {
		return errors.New("timing.default_line_gap must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
