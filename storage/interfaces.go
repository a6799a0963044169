package storage

import (
	"context"

	"github.com/poiesic/prodsearch/core"
)

// CatalogRepository stores the product catalog.
// Implementations must be thread-safe and support concurrent access.
type CatalogRepository interface {
	// AddProducts appends products to the catalog in the order given.
	// Returns ErrDuplicateKey if any product ID already exists; in that
	// case none of the products are stored.
	AddProducts(ctx context.Context, products ...core.Product) error

	// GetProduct retrieves a single product by ID.
	// Returns ErrNotFound if the product doesn't exist.
	GetProduct(ctx context.Context, id int) (*core.Product, error)

	// ListProducts returns every product in catalog (insertion) order.
	ListProducts(ctx context.Context) ([]core.Product, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
