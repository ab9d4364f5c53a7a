package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds listing defaults and the color theme. Command-line flags can
// only enable options on top of these defaults, never disable them.
type Config struct {
	Recursive  bool   `yaml:"recursive"`
	ShowHidden bool   `yaml:"show_hidden"`
	Colors     Colors `yaml:"colors"`
}

// Colors names the foreground color used for each entry kind.
type Colors struct {
	Directory string `yaml:"directory"`
	File      string `yaml:"file"`
	Symlink   string `yaml:"symlink"`
	Other     string `yaml:"other"`
}

// DefaultConfig returns the built-in defaults: nothing enabled, stock colors.
func DefaultConfig() *Config {
	return &Config{
		Colors: Colors{
			Directory: "blue",
			File:      "green",
			Symlink:   "cyan",
			Other:     "yellow",
		},
	}
}

// ConfigPath returns the path to the config file (~/.bls/config.yaml).
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bls", "config.yaml"), nil
}

// Load reads the config file, falling back to the defaults when no file
// exists. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the default location, creating ~/.bls if needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
