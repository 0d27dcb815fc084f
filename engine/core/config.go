package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the process-wide settings read from c3d.toml.
type Config struct {
	LogLevel string `toml:"log_level"`
	// Watch keeps the scene file under observation and re-evaluates it on every write.
	Watch bool `toml:"watch"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// LoadConfig reads path on top of DefaultConfig. Fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Apply pushes the settings that affect shared state, such as the log level.
func (c *Config) Apply() error {
	if c.LogLevel == "" {
		return nil
	}
	return SetLogLevel(c.LogLevel)
}
