package core

import (
	"errors"
	"testing"
)

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name    string
		product *Product
		wantErr error
	}{
		{
			name:    "valid product",
			product: &Product{ID: 1, Name: "Laptop", Description: "Fast", Category: "Electronics"},
			wantErr: nil,
		},
		{
			name:    "nil product",
			product: nil,
			wantErr: ErrInvalidProduct,
		},
		{
			name:    "zero id",
			product: &Product{ID: 0, Name: "Laptop", Description: "Fast", Category: "Electronics"},
			wantErr: ErrInvalidProductID,
		},
		{
			name:    "negative id",
			product: &Product{ID: -4, Name: "Laptop", Description: "Fast", Category: "Electronics"},
			wantErr: ErrInvalidProductID,
		},
		{
			name:    "blank name",
			product: &Product{ID: 1, Name: "  ", Description: "Fast", Category: "Electronics"},
			wantErr: ErrEmptyProductName,
		},
		{
			name:    "empty description",
			product: &Product{ID: 1, Name: "Laptop", Category: "Electronics"},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "empty category",
			product: &Product{ID: 1, Name: "Laptop", Description: "Fast"},
			wantErr: ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.product)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProduct() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProduct() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	good := Product{ID: 1, Name: "Laptop", Description: "Fast", Category: "Electronics"}
	other := Product{ID: 2, Name: "Desk", Description: "Oak", Category: "Furniture"}

	tests := []struct {
		name     string
		products []Product
		wantErr  error
	}{
		{name: "valid catalog", products: []Product{good, other}},
		{name: "empty catalog", products: nil, wantErr: ErrEmptyCatalog},
		{name: "duplicate id", products: []Product{good, good}, wantErr: ErrDuplicateProductID},
		{name: "invalid member", products: []Product{good, {ID: 9}}, wantErr: ErrEmptyProductName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalog(tt.products)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCatalog() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("ValidateCatalog() error = %v, want wrapping %v", err, ErrInvalidCatalog)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCatalog() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
