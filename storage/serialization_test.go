package storage

import (
	"testing"

	"github.com/poiesic/prodsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalProductID(t *testing.T) {
	for _, id := range []int{1, 26, 300, 1 << 30} {
		decoded, err := UnmarshalProductID(MarshalProductID(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	_, err := UnmarshalProductID([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalProduct(t *testing.T) {
	tests := []struct {
		name    string
		product core.Product
	}{
		{
			name:    "sample product",
			product: core.Product{ID: 1, Name: "Smartphone", Description: "High-end smartphone", Category: "Electronics"},
		},
		{
			name:    "unicode and ampersand",
			product: core.Product{ID: 23, Name: "Café Maker", Description: "Espresso – crema", Category: "Home & Kitchen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalProduct(&tt.product)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalProduct(data)
			require.NoError(t, err)
			assert.Equal(t, tt.product, *decoded)
		})
	}
}

func TestUnmarshalProduct_Truncated(t *testing.T) {
	data := MarshalProduct(&core.Product{ID: 5, Name: "Tablet", Description: "Lightweight", Category: "Electronics"})

	_, err := UnmarshalProduct(data[:len(data)-3])
	assert.ErrorIs(t, err, ErrSerializationFailed)

	_, err = UnmarshalProduct(append(data, 0x01))
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
