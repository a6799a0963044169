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

import (
	"fmt"
	"strings"
)

// ValidateProduct validates a Product according to domain rules.
//
// Validation rules:
//   - ID must be positive
//   - Name, Description and Category must not be blank
func ValidateProduct(product *Product) error {
	if product == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}

	if product.ID <= 0 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidProduct, ErrInvalidProductID, product.ID)
	}

	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyProductName)
	}

	if strings.TrimSpace(product.Description) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyDescription)
	}

	if strings.TrimSpace(product.Category) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyCategory)
	}

	return nil
}

// ValidateCatalog validates every product and checks that IDs are unique.
// An empty catalog is rejected.
func ValidateCatalog(products []Product) error {
	if len(products) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, ErrEmptyCatalog)
	}

	seen := make(map[int]struct{}, len(products))
	for i := range products {
		if err := ValidateProduct(&products[i]); err != nil {
			return fmt.Errorf("%w: position %d: %w", ErrInvalidCatalog, i, err)
		}
		if _, dup := seen[products[i].ID]; dup {
			return fmt.Errorf("%w: %w: %d", ErrInvalidCatalog, ErrDuplicateProductID, products[i].ID)
		}
		seen[products[i].ID] = struct{}{}
	}
	return nil
}
