package ollama

import (
	"testing"

	"github.com/poiesic/prodsearch/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	cfg := ai.NewConfig(
		ai.WithBackend(ai.BackendOllama),
		ai.WithEmbeddingHost("http://localhost:11434/v1"),
	)

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.NotNil(t, provider.Embedder())
	assert.Equal(t, "http://localhost:11434", cfg.EmbeddingHost)
	assert.NoError(t, provider.Close())
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(ai.NewConfig(ai.WithBackend(ai.BackendOllama), ai.WithEmbeddingHost("")))
	assert.Error(t, err)
}
