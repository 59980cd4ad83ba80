package ports

import "go.trai.ch/runner/internal/core/domain"

// ConfigLoader defines the interface for loading the runner configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the runner root and reads the optional configuration file below it.
	Load() (domain.Settings, error)
}
