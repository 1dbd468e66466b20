package config

import (
	"os"
	"time"
)

// Store backends accepted by StoreConfig.Backend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the task list application
type Config struct {
	Store       StoreConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StoreConfig selects and tunes the task store backend
type StoreConfig struct {
	Backend      string        `env:"TODO_STORE_BACKEND"`
	QueryTimeout time.Duration `env:"TODO_STORE_QUERY_TIMEOUT"`
}

// DisplayConfig holds interactive display configuration
type DisplayConfig struct {
	Prompt string `env:"TODO_DISPLAY_PROMPT"`
	Banner bool   `env:"TODO_DISPLAY_BANNER"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Quiet bool `env:"TODO_APP_QUIET"`
	Debug bool `env:"TODO_DEBUG"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:      BackendMemory,
			QueryTimeout: 5 * time.Second,
		},
		Display: DisplayConfig{
			Prompt: "> ",
			Banner: true,
		},
		Application: ApplicationConfig{
			Quiet: false,
			Debug: false,
		},
	}
}

// ShowPrompt reports whether a prompt is written before each read
func (c *Config) ShowPrompt() bool {
	return !c.Application.Quiet && c.Display.Prompt != ""
}

// ShowBanner reports whether the start-up banner is written
func (c *Config) ShowBanner() bool {
	return !c.Application.Quiet && c.Display.Banner
}

// LoadFromEnvironment loads configuration from environment variables.
// Unset or empty variables keep the current value; a value that does not
// parse is a *ConfigError naming the variable.
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if backend := os.Getenv("TODO_STORE_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}
	if err := lookupDuration("TODO_STORE_QUERY_TIMEOUT", &c.Store.QueryTimeout); err != nil {
		return err
	}

	// Display configuration; an explicitly empty prompt is honoured
	if prompt, ok := os.LookupEnv("TODO_DISPLAY_PROMPT"); ok {
		c.Display.Prompt = prompt
	}
	if err := lookupBool("TODO_DISPLAY_BANNER", &c.Display.Banner); err != nil {
		return err
	}

	// Application configuration
	if err := lookupBool("TODO_APP_QUIET", &c.Application.Quiet); err != nil {
		return err
	}
	if err := lookupBool("TODO_DEBUG", &c.Application.Debug); err != nil {
		return err
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return &ConfigError{Field: "store.backend", Message: "backend must be one of memory, sqlite"}
	}
	if c.Store.QueryTimeout <= 0 {
		return &ConfigError{Field: "store.query_timeout", Message: "query timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
