package search

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/poiesic/prodsearch/ai"
	"github.com/poiesic/prodsearch/core"
)

// DefaultThreshold is the raw similarity an item must exceed to be returned.
const DefaultThreshold = 0.1

// Ranker scores catalog products against a query by cosine similarity.
type Ranker struct {
	threshold float64
	logger    *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithThreshold sets the exclusive raw similarity cutoff.
// Default is DefaultThreshold.
func WithThreshold(threshold float64) Option {
	return func(r *Ranker) error {
		if math.IsNaN(threshold) || threshold < -1 || threshold >= 1 {
			return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
		}
		r.threshold = threshold
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(opts ...Option) (*Ranker, error) {
	r := &Ranker{
		threshold: DefaultThreshold,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	r.logger = r.logger.With("component", "ranker")

	return r, nil
}

// Threshold returns the configured raw similarity cutoff.
func (r *Ranker) Threshold() float64 {
	return r.threshold
}

// Rank embeds query and returns the products whose similarity exceeds the
// threshold, best first. vectors[i] must be the embedding of products[i].
// Every error wraps core.ErrSearchFailure.
func (r *Ranker) Rank(ctx context.Context, embedder ai.Embedder, query string, products []core.Product, vectors [][]float32) ([]core.RankedResult, error) {
	return r.RankWithMonitor(ctx, embedder, query, products, vectors, nil)
}

// RankWithMonitor ranks like Rank and reports each stage to monitor.
func (r *Ranker) RankWithMonitor(ctx context.Context, embedder ai.Embedder, query string, products []core.Product, vectors [][]float32, monitor RankMonitor) ([]core.RankedResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if embedder == nil {
		return nil, fmt.Errorf("%w: %w", core.ErrSearchFailure, ErrEmbedderRequired)
	}
	if len(products) != len(vectors) {
		return nil, fmt.Errorf("%w: %w: %d products, %d vectors",
			core.ErrSearchFailure, ErrCatalogMismatch, len(products), len(vectors))
	}

	monitor.Start(query)

	queryVector, err := embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrSearchFailure, err)
	}
	if len(queryVector) == 0 {
		return nil, fmt.Errorf("%w: %w", core.ErrSearchFailure, ErrEmptyQueryVector)
	}
	monitor.AfterQueryEmbedding(len(queryVector))

	raw := make([]float64, len(vectors))
	for i, v := range vectors {
		raw[i], err = CosineSimilarity(queryVector, v)
		if err != nil {
			return nil, fmt.Errorf("%w: product %d: %w", core.ErrSearchFailure, products[i].ID, err)
		}
	}

	results := r.rankScores(products, raw, monitor)
	r.logger.Debug("ranked query", "query", query, "candidates", len(products), "results", len(results))
	monitor.Finish(results)
	return results, nil
}

type scored struct {
	product core.Product
	raw     float64
}

// rankScores applies the threshold filter, stable descending sort and
// percentage transform to precomputed raw similarities.
// Items must both exceed the raw threshold and keep a published score
// above the threshold percentage after rounding.
func (r *Ranker) rankScores(products []core.Product, raw []float64, monitor RankMonitor) []core.RankedResult {
	cutoff := Score(r.threshold)

	kept := make([]scored, 0, len(products))
	for i, p := range products {
		if raw[i] > r.threshold && Score(raw[i]) > cutoff {
			kept = append(kept, scored{product: p, raw: raw[i]})
			monitor.Kept(p, raw[i])
			continue
		}
		monitor.Discarded(p, raw[i])
	}

	// Ties keep catalog order
	slices.SortStableFunc(kept, func(a, b scored) int {
		return cmp.Compare(b.raw, a.raw)
	})

	results := make([]core.RankedResult, len(kept))
	for i, s := range kept {
		results[i] = core.RankedResult{Product: s.product, Score: Score(s.raw)}
	}
	return results
}
