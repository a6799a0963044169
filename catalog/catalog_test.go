package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/prodsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	products := Sample()

	require.Len(t, products, 26)
	require.NoError(t, core.ValidateCatalog(products))
	assert.Equal(t, "Smartphone", products[0].Name)
	assert.Equal(t, "Air Purifier", products[25].Name)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID, "sample IDs follow catalog order")
	}

	counts := map[string]int{}
	for _, p := range products {
		counts[p.Category]++
	}
	assert.Equal(t, map[string]int{
		CategoryElectronics: 10,
		CategoryFood:        8,
		CategoryClothing:    4,
		CategoryHomeKitchen: 4,
	}, counts)
}

func TestSample_ReturnsCopy(t *testing.T) {
	a := Sample()
	a[0].Name = "changed"

	assert.Equal(t, "Smartphone", Sample()[0].Name)
}

func TestTexts(t *testing.T) {
	products := Sample()[:2]

	assert.Equal(t, []string{
		"Smartphone High-end smartphone with advanced camera and long battery life",
		"Laptop Powerful laptop for professional use with dedicated graphics card",
	}, Texts(products))
}

func TestFingerprint(t *testing.T) {
	products := Sample()

	fp := Fingerprint(products)
	assert.Len(t, fp, 32)
	assert.Equal(t, fp, Fingerprint(Sample()))

	reordered := Sample()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	assert.NotEqual(t, fp, Fingerprint(reordered))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{
		CategoryElectronics, CategoryFood, CategoryClothing, CategoryHomeKitchen,
	}, Categories(Sample()))
}

func TestParse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := []byte(`
products:
  - id: 7
    name: Kettle
    description: Electric kettle with auto shut-off
    category: Home & Kitchen
  - id: 3
    name: Scarf
    description: Wool scarf
    category: Clothing
`)
		products, err := Parse(doc)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, core.Product{ID: 7, Name: "Kettle", Description: "Electric kettle with auto shut-off", Category: "Home & Kitchen"}, products[0])
		assert.Equal(t, 3, products[1].ID)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("products: [unterminated"))
		assert.ErrorIs(t, err, ErrLoad)
	})

	t.Run("invalid catalog", func(t *testing.T) {
		_, err := Parse([]byte("products: []"))
		assert.ErrorIs(t, err, ErrLoad)
		assert.ErrorIs(t, err, core.ErrEmptyCatalog)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		doc := []byte(`
products:
  - {id: 1, name: A, description: a, category: X}
  - {id: 1, name: B, description: b, category: X}
`)
		_, err := Parse(doc)
		assert.ErrorIs(t, err, core.ErrDuplicateProductID)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - {id: 1, name: Lamp, description: Desk lamp, category: Home}\n"), 0o600))

	products, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", products[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoad)
}

func TestLoadOrSample(t *testing.T) {
	products, err := LoadOrSample("")
	require.NoError(t, err)
	assert.Len(t, products, 26)
}
