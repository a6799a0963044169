package search

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/prodsearch/ai/mock"
	"github.com/poiesic/prodsearch/catalog"
	"github.com/poiesic/prodsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func products(names ...string) []core.Product {
	out := make([]core.Product, len(names))
	for i, name := range names {
		out[i] = core.Product{ID: i + 1, Name: name, Description: name + " description", Category: "Test"}
	}
	return out
}

func names(results []core.RankedResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func fixedEmbedder(vector []float32) *mock.MockEmbedder {
	m := mock.NewMockEmbedder()
	m.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return vector, nil
	}
	return m
}

type recordingMonitor struct {
	started   string
	dimension int
	kept      []string
	discarded []string
	finished  int
}

func (m *recordingMonitor) Start(query string)                  { m.started = query }
func (m *recordingMonitor) AfterQueryEmbedding(dimension int)   { m.dimension = dimension }
func (m *recordingMonitor) Kept(p core.Product, _ float64)      { m.kept = append(m.kept, p.Name) }
func (m *recordingMonitor) Discarded(p core.Product, _ float64) { m.discarded = append(m.discarded, p.Name) }
func (m *recordingMonitor) Finish(results []core.RankedResult)  { m.finished = len(results) }

func TestNewRanker(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)
	assert.Equal(t, DefaultThreshold, r.Threshold())

	r, err = NewRanker(WithThreshold(0.25), WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 0.25, r.Threshold())
}

func TestNewRanker_InvalidThreshold(t *testing.T) {
	for _, th := range []float64{-1.5, 1, 2} {
		_, err := NewRanker(WithThreshold(th))
		assert.ErrorIs(t, err, ErrInvalidThreshold, "threshold %v", th)
	}
}

func TestRankScores_ThresholdBoundary(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	items := products("exact", "rounds-to-ten", "just-above", "strong", "negative")
	raw := []float64{0.1, 0.10001, 0.100051, 0.5, -0.3}

	results := r.rankScores(items, raw, &noopMonitor{})

	require.Len(t, results, 2)
	assert.Equal(t, []string{"strong", "just-above"}, names(results))
	assert.Equal(t, 50.0, results[0].Score)
	assert.Equal(t, 10.01, results[1].Score)
	for _, res := range results {
		assert.Greater(t, res.Score, 10.0)
	}
}

func TestRankScores_TiesKeepCatalogOrder(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	items := products("A", "B", "C", "D", "E")
	raw := []float64{0.5, 0.7, 0.5, 0.7, 0.5}

	results := r.rankScores(items, raw, &noopMonitor{})

	assert.Equal(t, []string{"B", "D", "A", "C", "E"}, names(results))
}

func TestRankScores_NoneAboveThreshold(t *testing.T) {
	r, err := NewRanker()
	require.NoError(t, err)

	results := r.rankScores(products("A", "B"), []float64{0.05, -0.9}, &noopMonitor{})

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRank(t *testing.T) {
	ctx := context.Background()
	r, err := NewRanker()
	require.NoError(t, err)

	items := products("same", "orthogonal", "diagonal", "opposite")
	vectors := [][]float32{{1, 0}, {0, 1}, {1, 1}, {-1, 0}}
	monitor := &recordingMonitor{}

	results, err := r.RankWithMonitor(ctx, fixedEmbedder([]float32{1, 0}), "query", items, vectors, monitor)
	require.NoError(t, err)

	assert.Equal(t, []string{"same", "diagonal"}, names(results))
	assert.Equal(t, 100.0, results[0].Score)
	assert.Equal(t, 70.71, results[1].Score)
	assert.Equal(t, core.Product{ID: 1, Name: "same", Description: "same description", Category: "Test"}, results[0].Product)

	assert.Equal(t, "query", monitor.started)
	assert.Equal(t, 2, monitor.dimension)
	assert.Equal(t, []string{"same", "diagonal"}, monitor.kept)
	assert.Equal(t, []string{"orthogonal", "opposite"}, monitor.discarded)
	assert.Equal(t, 2, monitor.finished)
}

func TestRank_CustomThreshold(t *testing.T) {
	r, err := NewRanker(WithThreshold(0.8))
	require.NoError(t, err)

	results, err := r.Rank(context.Background(), fixedEmbedder([]float32{1, 0}), "q",
		products("same", "diagonal"), [][]float32{{1, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"same"}, names(results))
}

func TestRank_Errors(t *testing.T) {
	ctx := context.Background()
	r, err := NewRanker()
	require.NoError(t, err)

	failing := mock.NewMockEmbedder()
	failing.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return nil, errors.New("model offline")
	}

	tests := []struct {
		name     string
		embedder *mock.MockEmbedder
		products []core.Product
		vectors  [][]float32
		wantErr  error
	}{
		{"length mismatch", fixedEmbedder([]float32{1}), products("A", "B"), [][]float32{{1}}, ErrCatalogMismatch},
		{"dimension mismatch", fixedEmbedder([]float32{1, 0, 0}), products("A"), [][]float32{{1, 0}}, ErrDimensionMismatch},
		{"empty query vector", fixedEmbedder([]float32{}), products("A"), [][]float32{{1}}, ErrEmptyQueryVector},
		{"embedder failure", failing, products("A"), [][]float32{{1}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Rank(ctx, tt.embedder, "q", tt.products, tt.vectors)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrSearchFailure)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("nil embedder", func(t *testing.T) {
		_, err := r.Rank(ctx, nil, "q", nil, nil)
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})
}

func TestRank_SampleCatalog(t *testing.T) {
	ctx := context.Background()
	r, err := NewRanker()
	require.NoError(t, err)

	sample := catalog.Sample()
	embedder := mock.NewKeywordEmbedder(0)
	vectors, err := embedder.EmbedTexts(ctx, catalog.Texts(sample))
	require.NoError(t, err)

	t.Run("exact product name ranks first", func(t *testing.T) {
		results, err := r.Rank(ctx, embedder, "Smartphone", sample, vectors)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Smartphone", results[0].Name)
		assert.Greater(t, results[0].Score, 50.0)
	})

	t.Run("nonsense query is empty", func(t *testing.T) {
		results, err := r.Rank(ctx, embedder, "xzqwplmno", sample, vectors)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	queries := []string{
		"coffee", "wireless battery life", "organic food", "waterproof jacket for winter",
		"premium", "long battery life", "fresh bread", "smart home",
	}
	for _, q := range queries {
		t.Run("properties/"+q, func(t *testing.T) {
			results, err := r.Rank(ctx, embedder, q, sample, vectors)
			require.NoError(t, err)
			for i, res := range results {
				assert.Greater(t, res.Score, 10.0)
				assert.LessOrEqual(t, res.Score, 100.0)
				if i > 0 {
					assert.GreaterOrEqual(t, results[i-1].Score, res.Score)
				}
			}
		})
	}
}
