package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/quantaops/pulsekit/core/metrics"
)

// Config is the top-level toolkit configuration.
type Config struct {
	Render  RenderConfig   `json:"render"`
	Server  ServerConfig   `json:"server"`
	Metrics metrics.Config `json:"metrics"`
}

// RenderConfig controls the built-in renderers.
type RenderConfig struct {
	// Format selects the default output: "text" or "html".
	Format string `json:"format"`
	// Theme is passed to the chart renderer ("dark", "westeros", ...).
	Theme string `json:"theme"`
	// Width and Height size the chart canvas, e.g. "1200px".
	Width  string `json:"width"`
	Height string `json:"height"`
	// MaxPoints caps the number of samples per rendered page.
	MaxPoints int `json:"max_points"`
}

// SetDefaults applies sane defaults.
func (c *RenderConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "html"
	}
	if c.Width == "" {
		c.Width = "1200px"
	}
	if c.Height == "" {
		c.Height = "600px"
	}
	if c.MaxPoints == 0 {
		c.MaxPoints = 4000
	}
}

// Validate checks mandatory fields.
func (c RenderConfig) Validate() error {
	if c.Format != "text" && c.Format != "html" {
		return fmt.Errorf("unknown render format %s", c.Format)
	}
	if c.MaxPoints < 0 {
		return fmt.Errorf("max_points must not be negative")
	}
	return nil
}

// ServerConfig configures the render HTTP service.
type ServerConfig struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// Load reads the configuration file, then applies PK_ environment variable
// overrides (PK_RENDER__FORMAT=text overrides render.format).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("PK_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pk_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Render.SetDefaults()
	cfg.Server.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Render.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Render.SetDefaults()
	cfg.Server.SetDefaults()
	cfg.Metrics.SetDefaults()
	return cfg
}
