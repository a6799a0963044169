package ai

import "context"

// Embedder turns product and query text into vectors.
// Implementations must be safe for concurrent use.
type Embedder interface {
	// EmbedText embeds a single query text.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts embeds texts in one batch. Vector i belongs to texts[i].
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbeddingProvider owns an embedding model connection and its lifecycle.
// A provider is created once, lazily, and shared by every request.
type EmbeddingProvider interface {
	Embedder() Embedder

	// Close releases the model connection. The provider must not be used
	// afterwards.
	Close() error
}
