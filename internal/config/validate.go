package config

import (
	"fmt"

	"github.com/trickstertwo/unilog"
)

// Validate ensures the configuration is usable and resolves its levels.
func (c *Config) Validate() error {
	if err := c.validateFacility(); err != nil {
		return err
	}
	if err := c.validateFallbackOutput(); err != nil {
		return err
	}
	if err := c.validateLevels(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFacility() error {
	switch c.Facility {
	case FacilityJournal, FacilityZap, FacilityZerolog, FacilitySlog, FacilityFallback:
		return nil
	}
	return fmt.Errorf("%w: facility must be one of journal, zap, zerolog, slog, fallback (got %q)", ErrInvalidConfig, c.Facility)
}

func (c *Config) validateFallbackOutput() error {
	switch c.FallbackOutput {
	case OutputStderr, OutputStdout:
		return nil
	}
	return fmt.Errorf("%w: fallback_output must be stderr or stdout (got %q)", ErrInvalidConfig, c.FallbackOutput)
}

func (c *Config) validateLevels() error {
	lvl, err := unilog.ParseLevel(c.MinLevel)
	if err != nil {
		return fmt.Errorf("%w: min_level: %w", ErrInvalidConfig, err)
	}
	c.minLevel = lvl

	c.labelLevels = make(map[string]unilog.Level, len(c.Labels))
	for name, lc := range c.Labels {
		if name == "" {
			return fmt.Errorf("%w: labels: empty label name", ErrInvalidConfig)
		}
		if lc.MinLevel == "" {
			continue
		}
		l, err := unilog.ParseLevel(lc.MinLevel)
		if err != nil {
			return fmt.Errorf("%w: labels.%s.min_level: %w", ErrInvalidConfig, name, err)
		}
		c.labelLevels[name] = l
	}
	return nil
}
