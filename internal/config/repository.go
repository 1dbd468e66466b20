package config

import (
	"fmt"

	"todo/internal/repository"
	"todo/internal/repository/memory"
	"todo/internal/repository/sqlite"
)

// CreateRepository creates the task backend selected by the configuration
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Store.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendSQLite:
		repo, err := sqlite.NewWithConfig(sqlite.Options{
			QueryTimeout: config.Store.QueryTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "store.backend", Message: fmt.Sprintf("unsupported backend %q", config.Store.Backend)}
	}
}
