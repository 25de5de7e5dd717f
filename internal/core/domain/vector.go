package domain

import "math"

// CosineSimilarity returns the cosine of the angle between a and b,
// a value in [-1, 1]. It is defined as 0 when either vector has zero
// norm, which avoids division by zero for empty-text embeddings.
// Vectors of unequal length are compared over their common prefix.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, x := range a {
		normA += float64(x) * float64(x)
	}
	for _, x := range b {
		normB += float64(x) * float64(x)
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RoundScore rounds a similarity score to 4 decimal places. Scores are
// rounded only at the result boundary; ranking uses full precision.
func RoundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}
