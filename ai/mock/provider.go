// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/poiesic/prodsearch/ai"
)

// ErrProviderFailed is returned by FailingFactory.
var ErrProviderFailed = errors.New("mock provider failed to load")

// MockProvider is a test double for ai.EmbeddingProvider.
type MockProvider struct {
	embedder   ai.Embedder
	closeCalls atomic.Int64
}

// NewMockProvider creates a new mock provider with a default mock embedder.
//
// Returns ai.EmbeddingProvider interface for consistency with production constructors.
// Use GetMockEmbedder() to access the concrete embedder for test assertions.
func NewMockProvider() ai.EmbeddingProvider {
	return &MockProvider{embedder: NewMockEmbedder()}
}

// NewMockProviderWithEmbedder creates a mock provider around any embedder.
// This allows full control over the behavior of the embedding service.
func NewMockProviderWithEmbedder(embedder ai.Embedder) *MockProvider {
	return &MockProvider{embedder: embedder}
}

// Embedder returns the wrapped embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Close records the call and returns nil.
func (p *MockProvider) Close() error {
	p.closeCalls.Add(1)
	return nil
}

// CloseCount returns the number of Close calls.
func (p *MockProvider) CloseCount() int {
	return int(p.closeCalls.Load())
}

// GetMockEmbedder returns the underlying mock embedder for test assertions,
// or nil when the provider wraps a different embedder type.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	m, _ := p.embedder.(*MockEmbedder)
	return m
}

// Factory counts provider constructions and delegates to New.
// It mirrors the lazy factory signature used by the search service.
type Factory struct {
	// New builds the provider. If nil, a default MockProvider is returned.
	New func(ctx context.Context) (ai.EmbeddingProvider, error)

	calls atomic.Int64
}

// Build invokes the factory.
func (f *Factory) Build(ctx context.Context) (ai.EmbeddingProvider, error) {
	f.calls.Add(1)
	if f.New != nil {
		return f.New(ctx)
	}
	return NewMockProvider(), nil
}

// CallCount returns the number of Build calls.
func (f *Factory) CallCount() int {
	return int(f.calls.Load())
}

// FailingFactory returns a Factory whose first n builds fail with
// ErrProviderFailed; later builds return provider.
func FailingFactory(n int, provider ai.EmbeddingProvider) *Factory {
	f := &Factory{}
	f.New = func(ctx context.Context) (ai.EmbeddingProvider, error) {
		if int(f.calls.Load()) <= n {
			return nil, ErrProviderFailed
		}
		return provider, nil
	}
	return f
}
