package dateutil

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/k-yomo/dateutil/pkg/clock"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// TimeZone is the IANA zone timestamps are displayed in (e.g. `Asia/Tokyo`).
	// If empty, the process default zone is used.
	TimeZone string `yaml:"timeZone" validate:"omitempty,timezone"`
	// Verbose enables debug logging
	Verbose bool `yaml:"verbose"`
}

// LoadConfig reads a YAML config file. An empty path returns the zero Config.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	if path == "" {
		return config, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Location resolves TimeZone, falling back to time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c == nil || c.TimeZone == "" {
		return time.Local, nil
	}
	return clock.LoadLocation(c.TimeZone)
}

func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config must not be nil")
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
