package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/prodsearch/core"
	"github.com/poiesic/prodsearch/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
//
// Products are stored under their ID. A second index maps a monotonically
// increasing position to the product ID, which preserves insertion order
// across iteration.
type CatalogRepository struct {
	backend     *Backend
	posSeq      *badger.Sequence
	ownsBackend bool
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository on an open backend.
// The caller remains responsible for closing the backend.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	posSeq, err := backend.GetSequence(positionSeq)
	if err != nil {
		return nil, err
	}

	return &CatalogRepository{
		backend: backend,
		posSeq:  posSeq,
	}, nil
}

// Close releases the position sequence, and the backend when the
// repository owns it.
func (r *CatalogRepository) Close() error {
	err := r.posSeq.Release()
	if r.ownsBackend {
		err = errors.Join(err, r.backend.Close())
	}
	return err
}

// AddProducts appends products to the catalog in the order given.
func (r *CatalogRepository) AddProducts(ctx context.Context, products ...core.Product) error {
	if err := r.ready(ctx); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		batch := make(map[int]struct{}, len(products))
		for i := range products {
			id := products[i].ID
			if _, dup := batch[id]; dup {
				return fmt.Errorf("%w: product %d", storage.ErrDuplicateKey, id)
			}
			batch[id] = struct{}{}

			_, err := tx.Get(makeProductKey(id))
			if err == nil {
				return fmt.Errorf("%w: product %d", storage.ErrDuplicateKey, id)
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}

		for i := range products {
			pos, err := r.posSeq.Next()
			if err != nil {
				return err
			}

			// Store primary record
			if err := tx.Set(makeProductKey(products[i].ID), storage.MarshalProduct(&products[i])); err != nil {
				return err
			}

			// Update order index
			if err := tx.Set(makePositionKey(pos), storage.MarshalProductID(products[i].ID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProduct retrieves a single product by ID.
func (r *CatalogRepository) GetProduct(ctx context.Context, id int) (*core.Product, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}

	var product *core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		product, err = readProduct(tx, id)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns every product in catalog order.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]core.Product, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}

	var products []core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(positionPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var id int
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalProductID(val)
				return err
			})
			if err != nil {
				return err
			}

			product, err := readProduct(tx, id)
			if err != nil {
				return fmt.Errorf("order index references product %d: %w", id, err)
			}
			products = append(products, *product)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the number of stored products.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	if err := r.ready(ctx); err != nil {
		return 0, err
	}

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

func (r *CatalogRepository) ready(ctx context.Context) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return ctx.Err()
}

func readProduct(tx *badger.Txn, id int) (*core.Product, error) {
	item, err := tx.Get(makeProductKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: product %d", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	var product *core.Product
	err = item.Value(func(val []byte) error {
		var err error
		product, err = storage.UnmarshalProduct(val)
		return err
	})
	return product, err
}
