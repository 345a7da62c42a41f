package ports

import "go.trai.ch/rosbrew/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load builds the configuration for a package directory.
	// When path is empty the config file is searched upwards from dir.
	Load(dir, path string) (*domain.Config, error)
}
