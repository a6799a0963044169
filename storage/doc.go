// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package storage provides the storage abstraction layer for the product catalog.
//
// This package defines the CatalogRepository interface that decouples the
// search service from the storage implementation, along with the MUS binary
// codecs used to encode products.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the interface type:
//
//	repo, err := badger.NewMemoryCatalogRepository()  // returns storage.CatalogRepository
//
// Internal constructors (newBackend, newCatalogRepository) may return
// concrete types since they're only used within the implementation package.
//
// # Usage
//
//	repo, err := badger.NewMemoryCatalogRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
//	if err := repo.AddProducts(ctx, catalog.Sample()...); err != nil {
//	    log.Fatal(err)
//	}
//	products, err := repo.ListProducts(ctx)
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Persistence
//
// The catalog lives for the life of the process only. The Badger backend
// is opened in in-memory mode and nothing is written to disk.
package storage
