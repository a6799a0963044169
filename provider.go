package prodsearch

import (
	"context"
	"fmt"

	"github.com/poiesic/prodsearch/ai"
	"github.com/poiesic/prodsearch/ai/ollama"
	"github.com/poiesic/prodsearch/ai/openai"
)

// probeText is embedded once when a provider is created to confirm the
// model is being served.
const probeText = "product search readiness probe"

// NewProviderFactory returns the production ProviderFactory for cfg.
// The factory builds the configured backend and embeds a probe text, so a
// provider is only reported as loaded once the model has answered.
func NewProviderFactory(cfg *ai.Config) ProviderFactory {
	return func(ctx context.Context) (ai.EmbeddingProvider, error) {
		c := *cfg
		if err := c.Validate(); err != nil {
			return nil, err
		}

		build := openai.NewProvider
		if c.Backend == ai.BackendOllama {
			build = ollama.NewProvider
		}

		provider, err := build(&c)
		if err != nil {
			return nil, err
		}

		if _, err := provider.Embedder().EmbedText(ctx, probeText); err != nil {
			provider.Close()
			return nil, fmt.Errorf("probe %s model %q at %s: %w", c.Backend, c.EmbeddingModel, c.EmbeddingHost, err)
		}
		return provider, nil
	}
}
