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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProduct indicates a Product failed validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidProductID indicates a product ID is not positive.
	ErrInvalidProductID = errors.New("product id must be positive")

	// ErrEmptyProductName indicates the product Name field is empty.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrEmptyDescription indicates the product Description field is empty.
	ErrEmptyDescription = errors.New("product description cannot be empty")

	// ErrEmptyCategory indicates the product Category field is empty.
	ErrEmptyCategory = errors.New("product category cannot be empty")

	// ErrInvalidCatalog indicates the catalog as a whole failed validation.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrEmptyCatalog indicates the catalog has no products.
	ErrEmptyCatalog = errors.New("catalog cannot be empty")

	// ErrDuplicateProductID indicates two products share the same ID.
	ErrDuplicateProductID = errors.New("duplicate product id")
)

// Search errors. These are classified at the HTTP boundary.
var (
	// ErrProviderUnavailable indicates the embedding provider could not be initialized.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")

	// ErrEmbeddingComputation indicates the catalog embeddings could not be computed.
	ErrEmbeddingComputation = errors.New("catalog embeddings unavailable")

	// ErrSearchFailure indicates a failure while ranking a query.
	ErrSearchFailure = errors.New("search failed")

	// ErrEmptyQuery indicates a search was requested without query text.
	ErrEmptyQuery = errors.New("query cannot be empty")
)
