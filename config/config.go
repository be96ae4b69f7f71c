// Package config loads the runtime configuration shared by the commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Save    SaveConfig    `yaml:"save"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

type InputConfig struct {
	// Bindings is an action map file on disk. Empty uses the embedded
	// defaults.
	Bindings string  `yaml:"bindings"`
	Deadzone float64 `yaml:"deadzone"`
	// Gamepads is an SDL mapping database loaded at startup.
	Gamepads string `yaml:"gamepads"`
	Watch    bool   `yaml:"watch"`
}

type SaveConfig struct {
	App string `yaml:"app"`
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "quiver",
			Width:     960,
			Height:    540,
			Resizable: true,
		},
		Input: InputConfig{
			Deadzone: 0.2,
		},
		Save: SaveConfig{
			App: "quiver",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Input.Deadzone < 0 || c.Input.Deadzone >= 1 {
		return fmt.Errorf("input deadzone %v outside [0, 1)", c.Input.Deadzone)
	}
	if _, ok := parseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
