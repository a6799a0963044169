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


package prodsearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/prodsearch/ai"
	"github.com/poiesic/prodsearch/catalog"
	"github.com/poiesic/prodsearch/core"
	"github.com/poiesic/prodsearch/search"
	"github.com/poiesic/prodsearch/storage"
)

// ProviderFactory builds the embedding provider on first use.
type ProviderFactory func(ctx context.Context) (ai.EmbeddingProvider, error)

// Service answers status and search requests over a fixed catalog.
//
// The embedding provider and the catalog embeddings are created lazily on
// first use and memoized for the life of the Service. Failed attempts are
// not memoized; the next call tries again. The mutex only guards the
// memoized fields, so concurrent first calls may both contact the provider.
type Service struct {
	products    []core.Product
	fingerprint string
	newProvider ProviderFactory
	ranker      *search.Ranker
	logger      *slog.Logger

	mu       sync.Mutex
	provider ai.EmbeddingProvider
	vectors  [][]float32
	closed   bool
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	logger     *slog.Logger
	rankerOpts []search.Option
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithThreshold sets the raw similarity a product must exceed to be returned.
func WithThreshold(threshold float64) ServiceOption {
	return func(o *serviceOptions) {
		o.rankerOpts = append(o.rankerOpts, search.WithThreshold(threshold))
	}
}

// NewService snapshots the catalog held by repo and prepares lazy search
// state. The provider is not contacted until the first Status, Search or
// Warm call.
func NewService(ctx context.Context, repo storage.CatalogRepository, factory ProviderFactory, opts ...ServiceOption) (*Service, error) {
	if repo == nil {
		return nil, ErrCatalogRequired
	}
	if factory == nil {
		return nil, ErrProviderFactoryRequired
	}

	options := &serviceOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := core.ValidateCatalog(products); err != nil {
		return nil, err
	}

	ranker, err := search.NewRanker(append([]search.Option{search.WithLogger(options.logger)}, options.rankerOpts...)...)
	if err != nil {
		return nil, err
	}

	return &Service{
		products:    products,
		fingerprint: catalog.Fingerprint(products),
		newProvider: factory,
		ranker:      ranker,
		logger:      options.logger.With("component", "service"),
	}, nil
}

// Products returns a copy of the catalog in catalog order.
func (s *Service) Products() []core.Product {
	out := make([]core.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Fingerprint returns the catalog fingerprint.
func (s *Service) Fingerprint() string {
	return s.fingerprint
}

// Provider returns the embedding provider, creating it on first use.
// Errors wrap core.ErrProviderUnavailable.
func (s *Service) Provider(ctx context.Context) (ai.EmbeddingProvider, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", core.ErrProviderUnavailable, ErrServiceClosed)
	}
	if s.provider != nil {
		p := s.provider
		s.mu.Unlock()
		return p, nil
	}
	s.mu.Unlock()

	s.logger.Info("loading embedding provider")
	start := time.Now()
	p, err := s.newProvider(ctx)
	if err == nil && p == nil {
		err = errors.New("factory returned no provider")
	}
	if err != nil {
		s.logger.Error("error loading embedding provider", "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrProviderUnavailable, err)
	}

	s.mu.Lock()
	if s.closed || s.provider != nil {
		existing, closed := s.provider, s.closed
		s.mu.Unlock()
		// Another caller won the race or the service closed meanwhile
		if err := p.Close(); err != nil {
			s.logger.Warn("error closing duplicate provider", "err", err)
		}
		if closed {
			return nil, fmt.Errorf("%w: %w", core.ErrProviderUnavailable, ErrServiceClosed)
		}
		return existing, nil
	}
	s.provider = p
	s.mu.Unlock()

	s.logger.Info("embedding provider loaded", "duration", time.Since(start))
	return p, nil
}

// CatalogVectors returns one embedding per catalog product, computing them
// in a single batch on first use. Position i always belongs to product i.
// Errors wrap core.ErrProviderUnavailable or core.ErrEmbeddingComputation.
func (s *Service) CatalogVectors(ctx context.Context) ([][]float32, error) {
	s.mu.Lock()
	if s.vectors != nil {
		v := s.vectors
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	p, err := s.Provider(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("computing catalog embeddings", "products", len(s.products), "fingerprint", s.fingerprint)
	start := time.Now()
	vectors, err := s.computeVectors(ctx, p.Embedder())
	if err != nil {
		s.logger.Error("error computing catalog embeddings", "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrEmbeddingComputation, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", core.ErrProviderUnavailable, ErrServiceClosed)
	}
	if s.vectors == nil {
		s.vectors = vectors
	}
	vectors = s.vectors
	s.mu.Unlock()

	s.logger.Info("catalog embeddings computed",
		"products", len(vectors),
		"dimension", len(vectors[0]),
		"duration", time.Since(start))
	return vectors, nil
}

func (s *Service) computeVectors(ctx context.Context, embedder ai.Embedder) ([][]float32, error) {
	vectors, err := embedder.EmbedTexts(ctx, catalog.Texts(s.products))
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(s.products) {
		return nil, fmt.Errorf("embedding result mismatch: %d products, %d vectors", len(s.products), len(vectors))
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) == 0 {
			return nil, fmt.Errorf("empty embedding for product %d", s.products[i].ID)
		}
		if len(v) != dim {
			return nil, fmt.Errorf("embedding for product %d has dimension %d, want %d", s.products[i].ID, len(v), dim)
		}
	}
	return vectors, nil
}

// Status probes the provider and the catalog embeddings, triggering lazy
// initialization as a side effect. When the provider cannot be loaded the
// embeddings are reported unavailable without a second provider attempt.
func (s *Service) Status(ctx context.Context) core.Status {
	if _, err := s.Provider(ctx); err != nil {
		return core.Status{}
	}
	_, err := s.CatalogVectors(ctx)
	return core.Status{ModelLoaded: true, EmbeddingsLoaded: err == nil}
}

// Warm drives lazy initialization of the provider and catalog embeddings.
func (s *Service) Warm(ctx context.Context) error {
	_, err := s.CatalogVectors(ctx)
	return err
}

// Search ranks the catalog against query.
func (s *Service) Search(ctx context.Context, query string) ([]core.RankedResult, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor ranks the catalog against query and reports each
// ranking stage to monitor. A nil monitor is allowed.
func (s *Service) SearchWithMonitor(ctx context.Context, query string, monitor search.RankMonitor) ([]core.RankedResult, error) {
	if query == "" {
		return nil, core.ErrEmptyQuery
	}

	p, err := s.Provider(ctx)
	if err != nil {
		return nil, err
	}

	vectors, err := s.CatalogVectors(ctx)
	if err != nil {
		return nil, err
	}

	return s.ranker.RankWithMonitor(ctx, p.Embedder(), query, s.products, vectors, monitor)
}

// Close releases the memoized provider. Later calls report the provider
// as unavailable.
func (s *Service) Close() error {
	s.mu.Lock()
	p := s.provider
	s.provider = nil
	s.vectors = nil
	s.closed = true
	s.mu.Unlock()

	if p == nil {
		return nil
	}
	if err := p.Close(); err != nil {
		s.logger.Error("error closing embedding provider", "err", err)
		return err
	}
	return nil
}
