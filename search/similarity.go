package search

import (
	"fmt"
	"math"
)

// CosineSimilarity returns the cosine of the angle between a and b.
// Accumulation is done in float64. A zero-length vector on either side
// yields 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Score converts a raw similarity to a percentage rounded to two decimals.
func Score(raw float64) float64 {
	return math.Round(raw*10000) / 100
}
