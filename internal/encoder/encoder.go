// Package encoder maps text to fixed-size semantic vectors and provides the
// similarity math the ranking engine scores with.
package encoder

import (
	"context"
	"math"
)

// Encoder produces a semantic embedding vector for a piece of text.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// Cosine returns the cosine similarity of two vectors, a scalar in [-1, 1].
// Mismatched lengths, empty vectors and zero-norm vectors all score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
