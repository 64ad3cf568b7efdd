package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/agenthands/braintape/pkg/vm"
)

// Config holds interpreter settings loaded from a TOML or YAML file.
// Command-line flags override file values; the zero file is valid and yields
// Default.
type Config struct {
	Tape  TapeConfig  `toml:"tape" yaml:"tape"`
	Run   RunConfig   `toml:"run" yaml:"run"`
	Debug DebugConfig `toml:"debug" yaml:"debug"`
}

// TapeConfig holds memory settings.
type TapeConfig struct {
	Size int `toml:"size" yaml:"size"`
}

// RunConfig holds execution settings.
type RunConfig struct {
	Optimize bool   `toml:"optimize" yaml:"optimize"`
	EOF      string `toml:"eof" yaml:"eof"`
}

// DebugConfig holds debugger settings.
type DebugConfig struct {
	// Window is the number of tape cells shown around the pointer.
	Window int `toml:"window" yaml:"window"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tape:  TapeConfig{Size: vm.DefaultTapeSize},
		Run:   RunConfig{Optimize: true, EOF: "error"},
		Debug: DebugConfig{Window: 16},
	}
}

// Load reads a config file, detecting the format from the file extension
// (.toml, .yaml, .yml). Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported file extension %q (use .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values after loading or flag overrides.
func (c *Config) Validate() error {
	if c.Tape.Size <= 0 {
		return fmt.Errorf("config: tape size must be positive, got %d", c.Tape.Size)
	}
	if _, err := vm.ParseEOFPolicy(c.Run.EOF); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Debug.Window <= 0 {
		return fmt.Errorf("config: debug window must be positive, got %d", c.Debug.Window)
	}
	return nil
}
