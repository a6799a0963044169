package catalog

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/prodsearch/core"
)

// Texts returns the embedding text of every product, in catalog order.
// Position i of the result always belongs to products[i].
func Texts(products []core.Product) []string {
	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = p.EmbeddingText()
	}
	return texts
}

// Fingerprint returns a hex encoded BLAKE2b digest over the ordered
// embedding texts. Reordering the catalog changes the fingerprint.
func Fingerprint(products []core.Product) string {
	h, _ := blake2b.New(16, nil) // 16 bytes = 128 bits
	for _, text := range Texts(products) {
		h.Write([]byte(text))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Categories returns the distinct categories in order of first appearance.
func Categories(products []core.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
