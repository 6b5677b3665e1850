package ports

import "go.trai.ch/swap/internal/core/domain"

// BackendCatalog lists the built-in cache pool backends compiled into the binary.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type BackendCatalog interface {
	// Available reports whether kind can be constructed.
	Available(kind domain.BackendKind) bool

	// Open constructs a pool of the given kind for namespace with a ttl in seconds.
	Open(kind domain.BackendKind, namespace string, ttl int) (CachePool, error)
}
