package ports

import "go.trai.ch/remake/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at the given path and returns the verified
	// build graph it describes.
	Load(path string) (*domain.Graph, error)
}
