// Package config loads pipelinedeck settings from TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"pipelinedeck/internal/display"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvConfigPath names the environment variable holding the config path.
const EnvConfigPath = "PIPELINEDECK_CONFIG"

// Config is the application configuration.
type Config struct {
	Display   DisplayConfig   `toml:"display"`
	Log       LogConfig       `toml:"log"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// DisplayConfig controls the fullscreen facility.
type DisplayConfig struct {
	Mode            string `toml:"mode"`
	StartFullscreen bool   `toml:"start_fullscreen"`
	PollInterval    string `toml:"poll_interval"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// TelemetryConfig controls slide-visit span export.
type TelemetryConfig struct {
	Endpoint    string `toml:"endpoint"`
	ServiceName string `toml:"service_name"`
	Insecure    bool   `toml:"insecure"`
}

// LoadConfig reads and parses a TOML configuration file. Keys missing from
// the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns the configuration described by the embedded example.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Resolve loads the config at path, falling back to $PIPELINEDECK_CONFIG.
// With neither set the defaults are used. Environment overrides apply last.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	config := DefaultConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	config.ApplyEnv()
	return config, nil
}

// ApplyEnv overlays the standard OpenTelemetry environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Telemetry.Endpoint = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		c.Telemetry.ServiceName = v
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := display.ParseMode(c.Display.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.PollInterval(); err != nil {
		return err
	}
	return nil
}

// PollInterval parses display.poll_interval. Empty means the default.
func (c *Config) PollInterval() (time.Duration, error) {
	if c.Display.PollInterval == "" {
		return display.DefaultPollInterval, nil
	}
	d, err := time.ParseDuration(c.Display.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("%w: poll_interval: %v", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: poll_interval must be positive", ErrInvalidConfig)
	}
	return d, nil
}

// CreateConfigFile writes the example config to path. It refuses to
// overwrite an existing file.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
