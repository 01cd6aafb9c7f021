package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/trickstertwo/unilog"
)

// ErrInvalidConfig marks configuration that parsed but cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Label holds overrides for a single label.
type Label struct {
	MinLevel string            `toml:"min_level" yaml:"min_level"`
	Metadata map[string]string `toml:"metadata" yaml:"metadata"`
}

// Config is the unilogctl configuration.
type Config struct {
	AppID          string           `toml:"app_id" yaml:"app_id"`
	Facility       string           `toml:"facility" yaml:"facility"`
	MinLevel       string           `toml:"min_level" yaml:"min_level"`
	FallbackOutput string           `toml:"fallback_output" yaml:"fallback_output"`
	Labels         map[string]Label `toml:"labels" yaml:"labels"`

	minLevel    unilog.Level
	labelLevels map[string]unilog.Level
}

// Load reads path, applies defaults, and validates the result. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := decode(file, filepath.Ext(path), &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(r io.Reader, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported config extension %q (want .toml, .yaml or .yml)", ErrInvalidConfig, ext)
	}
}

// LevelFor returns the minimum level for label, falling back to the
// global min_level.
func (c *Config) LevelFor(label string) unilog.Level {
	if l, ok := c.labelLevels[label]; ok {
		return l
	}
	return c.minLevel
}

// MetadataFor returns the metadata configured for label, or nil.
func (c *Config) MetadataFor(label string) unilog.Metadata {
	lc, ok := c.Labels[label]
	if !ok || len(lc.Metadata) == 0 {
		return nil
	}
	md := make(unilog.Metadata, len(lc.Metadata))
	for k, v := range lc.Metadata {
		md[k] = unilog.StringValue(v)
	}
	return md
}
