package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidType is returned when a configuration value has the wrong type.
	ErrInvalidType = zerr.New("invalid type")

	// ErrMissingRequired is returned when a required configuration value is absent or empty.
	ErrMissingRequired = zerr.New("missing required value")

	// ErrUnknownKey is returned when the configuration contains a key the schema does not define.
	ErrUnknownKey = zerr.New("unknown key")

	// ErrDuplicateKey is returned when a key or provider name is defined twice in one document.
	ErrDuplicateKey = zerr.New("duplicate key")
)

var (
	// ErrBackendUnavailable is returned when a built-in cache backend is not compiled in.
	ErrBackendUnavailable = zerr.New("cache backend unavailable")

	// ErrUnknownCacheType is returned when the cache type is neither built in nor registered.
	ErrUnknownCacheType = zerr.New("unknown cache type")

	// ErrCapabilityMismatch is returned when a referenced service cannot act as a cache pool.
	ErrCapabilityMismatch = zerr.New("service is not a cache pool")

	// ErrDefinitionNotFound is returned when a registry lookup misses.
	ErrDefinitionNotFound = zerr.New("definition not found")

	// ErrArgumentOutOfRange is returned when a definition argument index does not exist.
	ErrArgumentOutOfRange = zerr.New("argument index out of range")
)

var (
	// ErrUnsupportedCall is returned when a definition records a method the resolver cannot replay.
	ErrUnsupportedCall = zerr.New("unsupported method call")

	// ErrNoProviders is returned when a builder is built without any provider.
	ErrNoProviders = zerr.New("no providers registered")

	// ErrNoConfigFiles is returned when the loader is given no paths.
	ErrNoConfigFiles = zerr.New("no configuration files given")

	// ErrReservedID is returned when a host service claims an id the wiring owns.
	ErrReservedID = zerr.New("reserved service id")
)

// IsValidationError reports whether err was raised while validating configuration.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrMissingRequired) ||
		errors.Is(err, ErrUnknownKey) ||
		errors.Is(err, ErrDuplicateKey)
}

// IsWiringError reports whether err was raised while planning or applying the wiring.
func IsWiringError(err error) bool {
	return errors.Is(err, ErrBackendUnavailable) ||
		errors.Is(err, ErrUnknownCacheType) ||
		errors.Is(err, ErrCapabilityMismatch) ||
		errors.Is(err, ErrDefinitionNotFound) ||
		errors.Is(err, ErrArgumentOutOfRange)
}
