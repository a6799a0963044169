package openai

import (
	"testing"

	"github.com/poiesic/prodsearch/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	cfg := ai.NewConfig(ai.WithEmbeddingHost("http://localhost:9999"))

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	require.NotNil(t, provider.Embedder())
	assert.Equal(t, "http://localhost:9999/v1", cfg.EmbeddingHost)
	assert.NoError(t, provider.Close())
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(ai.NewConfig(ai.WithEmbeddingModel("")))
	assert.Error(t, err)
}

func TestNewEmbedder_EmptyToken(t *testing.T) {
	embedder, err := NewEmbedder(ai.NewConfig(ai.WithToken("")))
	require.NoError(t, err)
	assert.NotNil(t, embedder)
}
