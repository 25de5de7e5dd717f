// Package hash provides a deterministic placeholder embedding service.
//
// Vectors are bag-of-characters fingerprints: a histogram of character
// codes modulo the dimension count, L2-normalised. This is not a semantic
// embedding - it exists so the retrieval pipeline has a deterministic,
// dependency-free vector source. A learned provider can replace it behind
// the same port as long as it is deterministic and keeps the corpus at one
// dimensionality.
package hash

import (
	"context"
	"math"

	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// DefaultDimensions is the default embedding vector size.
const DefaultDimensions = 64

// EmbeddingService generates bag-of-characters embeddings.
type EmbeddingService struct {
	dims int
}

// New creates an embedding service with the given dimensionality.
// Non-positive dims falls back to DefaultDimensions.
func New(dims int) *EmbeddingService {
	if dims <= 0 {
		dims = DefaultDimensions
	}
	return &EmbeddingService{dims: dims}
}

// Embed generates a unit-normalised vector for text. Empty text produces
// the zero vector (its norm substitutes to 1 so no division blows up).
// Identical input always yields bit-identical output.
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float64, s.dims)
	for _, r := range text {
		vec[int(r)%s.dims]++
	}

	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		norm = 1
	}

	out := make([]float32, s.dims)
	for i, x := range vec {
		out[i] = float32(x / norm)
	}

	return out, nil
}

// EmbedBatch generates embeddings for multiple texts.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i, t := range texts {
		vec, err := s.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		result[i] = vec
	}
	return result, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dims
}

// ModelName returns the name of the embedding model.
func (s *EmbeddingService) ModelName() string {
	return "bag-of-characters"
}
