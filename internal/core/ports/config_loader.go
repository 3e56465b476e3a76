package ports

import "go.trai.ch/stylecache/internal/core/domain"

// ConfigLoader defines the interface for loading the cache configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration for the given working directory and returns it
	// with defaults applied. A missing config file is not an error.
	Load(cwd string) (*domain.Config, error)
}
