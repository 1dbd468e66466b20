package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides; nil fields are left alone
type ConfigOverrides struct {
	// Store overrides
	Backend      *string
	QueryTimeout *time.Duration

	// Display overrides
	Prompt *string
	Banner *bool

	// Application overrides
	Quiet *bool
	Debug *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Store.Backend = *overrides.Backend
	}
	if overrides.QueryTimeout != nil {
		config.Store.QueryTimeout = *overrides.QueryTimeout
	}

	if overrides.Prompt != nil {
		config.Display.Prompt = *overrides.Prompt
	}
	if overrides.Banner != nil {
		config.Display.Banner = *overrides.Banner
	}

	if overrides.Quiet != nil {
		config.Application.Quiet = *overrides.Quiet
	}
	if overrides.Debug != nil {
		config.Application.Debug = *overrides.Debug
	}
}

// lookupDuration sets target from the environment variable key when it is non-empty
func lookupDuration(key string, target *time.Duration) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return &ConfigError{Field: key, Message: fmt.Sprintf("invalid duration %q", value)}
	}
	*target = d
	return nil
}

// lookupBool sets target from the environment variable key when it is non-empty
func lookupBool(key string, target *bool) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return &ConfigError{Field: key, Message: fmt.Sprintf("invalid boolean %q", value)}
	}
	*target = b
	return nil
}
