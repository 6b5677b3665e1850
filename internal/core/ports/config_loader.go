package ports

import "go.trai.ch/swap/internal/core/domain"

// ConfigLoader defines the interface for loading the swap configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads, merges and validates the configuration files in the given order.
	Load(paths []string) (*domain.Config, error)
}
