package prodsearch

import "errors"

var (
	// ErrCatalogRequired is returned when a catalog repository is not provided.
	ErrCatalogRequired = errors.New("catalog repository required")

	// ErrProviderFactoryRequired is returned when a provider factory is not provided.
	ErrProviderFactoryRequired = errors.New("provider factory required")

	// ErrServiceClosed is returned after Close has been called.
	ErrServiceClosed = errors.New("service is closed")
)
