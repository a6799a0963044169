package ollama

import (
	"log/slog"

	"github.com/poiesic/prodsearch/ai"
)

// Provider implements ai.EmbeddingProvider on top of a local Ollama server.
type Provider struct {
	embedder *Embedder
	logger   *slog.Logger
}

// NewProvider creates a new embedding provider for the Ollama API.
// The /v1 suffix used by the OpenAI-compatible endpoint is stripped from
// the configured host.
func NewProvider(config *ai.Config) (ai.EmbeddingProvider, error) {
	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		embedder: embedder,
		logger:   slog.Default().With("component", "ollama-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Close is a no-op; the HTTP client holds no dedicated resources.
func (p *Provider) Close() error {
	p.logger.Debug("closing Ollama provider")
	return nil
}
