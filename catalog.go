package prodsearch

import (
	"context"

	"github.com/poiesic/prodsearch/core"
	"github.com/poiesic/prodsearch/storage"
	"github.com/poiesic/prodsearch/storage/badger"
)

// OpenCatalog validates products and loads them, in order, into a new
// in-memory catalog repository. The caller must close the repository.
func OpenCatalog(ctx context.Context, products []core.Product) (storage.CatalogRepository, error) {
	if err := core.ValidateCatalog(products); err != nil {
		return nil, err
	}

	repo, err := badger.NewMemoryCatalogRepository()
	if err != nil {
		return nil, err
	}

	if err := repo.AddProducts(ctx, products...); err != nil {
		repo.Close()
		return nil, err
	}
	return repo, nil
}
