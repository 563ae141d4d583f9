package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config controls how loggers are set up.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn, or error.
	// Default: info.
	Level string `yaml:"level,omitempty"`

	// Format selects the output encoding: "json" or "console".
	// Default: json.
	Format string `yaml:"format,omitempty"`

	// FilePath appends output to a file instead of stderr.
	FilePath string `yaml:"file_path,omitempty"`

	// Domain tags every line with a logical subsystem name.
	Domain string `yaml:"domain,omitempty"`
}

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: FormatJSON,
	}
}

// Load reads a Config from a YAML file, fills in defaults, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read logging config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse logging config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
}

// Validate checks the level and format values.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown level %q: %w", c.Level, err)
	}
	if c.Format != FormatJSON && c.Format != FormatConsole {
		return fmt.Errorf("unknown format %q (want %q or %q)", c.Format, FormatJSON, FormatConsole)
	}
	return nil
}
