package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/chipdeck/internal/card"
)

// Config represents the application configuration
type Config struct {
	DrawCount  int         `toml:"draw_count"`
	Seed       uint64      `toml:"seed"` // 0 means a fresh random seed on every run
	Color      bool        `toml:"color"`
	ExtraCards []card.Spec `toml:"extra_cards"`
}

// Default returns the configuration written by a fresh init.
func Default() *Config {
	return &Config{
		DrawCount: 5,
		Color:     true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file. CHIPDECK_CONFIG
// overrides the XDG location.
func GetConfigFilePath() string {
	if p := os.Getenv("CHIPDECK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(GetXDGConfigHome(), "chipdeck", "config.toml")
}

// LoadConfig loads the config file, creating a default one if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	return LoadFrom(configPath)
}

// LoadFrom decodes the config file at path. Keys missing from the file keep
// their default values.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// BuildExtraCards turns the [[extra_cards]] entries into cards.
func (c *Config) BuildExtraCards() ([]*card.Card, error) {
	cards := make([]*card.Card, 0, len(c.ExtraCards))
	for i, spec := range c.ExtraCards {
		built, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("extra_cards[%d] (%s): %w", i, spec, err)
		}
		cards = append(cards, built)
	}
	return cards, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	config := Default()
	if err := Save(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to path, creating the parent directory as needed.
func Save(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Keys lists the scalar settings accepted by SetValue.
func Keys() []string {
	return []string{"draw_count", "seed", "color"}
}

// SetValue parses value for key and stores it in the config file
func SetValue(key, value string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if err := config.Set(key, value); err != nil {
		return err
	}

	return Save(GetConfigFilePath(), config)
}

// Set parses value for key and updates c in memory.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "draw_count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("draw_count must be an integer: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("draw_count must not be negative: %d", n)
		}
		c.DrawCount = n
	case "seed":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be a non-negative integer: %w", err)
		}
		c.Seed = n
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color must be true or false: %w", err)
		}
		c.Color = b
	default:
		return fmt.Errorf("unknown config key: %s (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}
