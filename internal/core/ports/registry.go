package ports

import "go.trai.ch/swap/internal/core/domain"

// ServiceRegistry is the mutable set of service definitions built during bootstrap.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type ServiceRegistry interface {
	// Definition returns the definition registered under id.
	// It returns domain.ErrDefinitionNotFound when id is unknown.
	Definition(id string) (*domain.Definition, error)

	// SetDefinition registers def under id, replacing any previous definition.
	SetDefinition(id string, def *domain.Definition)

	// HasDefinition reports whether id is registered.
	HasDefinition(id string) bool
}
