package index

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch indicates cache corruption or provider
// misconfiguration. It is a programming-error class: fatal, never recovered
// by switching ranking strategy.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// CosineSimilarity computes the cosine similarity between two vectors in
// [-1, 1]. Mismatched lengths fail loudly; a zero-magnitude vector yields
// similarity 0 rather than dividing by zero.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}
