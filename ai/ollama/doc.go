// Package ollama provides an embedding provider backed by the native Ollama API.
//
// Use it when the embedding model is served by Ollama and the
// OpenAI-compatible endpoint is unavailable or disabled:
//
//	config := ai.NewConfig(
//	    ai.WithBackend(ai.BackendOllama),
//	    ai.WithEmbeddingHost("http://localhost:11434"),
//	)
//	provider, err := ollama.NewProvider(config)
package ollama
