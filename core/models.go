package core

// Product is a single catalog entry. Products are immutable once the
// catalog has been loaded.
type Product struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// EmbeddingText returns the text used to compute the product's embedding:
// the name and description joined by a single space.
func (p Product) EmbeddingText() string {
	return p.Name + " " + p.Description
}

// RankedResult is a product paired with its similarity score.
// Score is a percentage in the range (0, 100] rounded to two decimals.
type RankedResult struct {
	Product
	Score float64 `json:"score"`
}

// Status reports the readiness of the lazily initialized search state.
type Status struct {
	ModelLoaded      bool `json:"model_loaded"`
	EmbeddingsLoaded bool `json:"embeddings_loaded"`
}

// Ready reports whether both the provider and the catalog embeddings are available.
func (s Status) Ready() bool {
	return s.ModelLoaded && s.EmbeddingsLoaded
}
