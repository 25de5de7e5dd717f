package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCosineSimilarity_SelfIsOne tests score(v, v) ≈ 1 for non-zero vectors
func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0.3, 0.4, 0.5},
		{-2, 7, 0.001},
	}

	for _, v := range vectors {
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	}
}

// TestCosineSimilarity_NegationIsMinusOne tests score(v, -v) ≈ -1
func TestCosineSimilarity_NegationIsMinusOne(t *testing.T) {
	v := []float32{0.3, -0.4, 0.5}
	neg := make([]float32, len(v))
	for i, x := range v {
		neg[i] = -x
	}

	assert.InDelta(t, -1.0, CosineSimilarity(v, neg), 1e-9)
}

// TestCosineSimilarity_ZeroNorm tests the zero-vector convention
func TestCosineSimilarity_ZeroNorm(t *testing.T) {
	zero := []float32{0, 0, 0}
	v := []float32{1, 2, 3}

	assert.Equal(t, 0.0, CosineSimilarity(zero, v))
	assert.Equal(t, 0.0, CosineSimilarity(v, zero))
	assert.Equal(t, 0.0, CosineSimilarity(zero, zero))
	assert.Equal(t, 0.0, CosineSimilarity(nil, v))
}

// TestCosineSimilarity_Orthogonal tests orthogonal vectors score 0
func TestCosineSimilarity_Orthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

// TestRoundScore tests rounding to 4 decimal places
func TestRoundScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.123456, 0.1235},
		{0.99999, 1.0},
		{-0.00004, 0.0},
		{-0.123449, -0.1234},
		{1.0, 1.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundScore(tt.in), 1e-12)
	}
}
