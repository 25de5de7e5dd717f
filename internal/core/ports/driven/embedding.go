package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// The default implementation is a deterministic bag-of-characters
// fingerprint, not a learned model. The retrieval guarantees hold for any
// implementation that is deterministic and produces fixed-length vectors of
// matching dimensionality across the corpus.
//
// Implementations may include:
//   - hash (built-in deterministic placeholder)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Ollama (nomic-embed-text, all-minilm)
type EmbeddingService interface {
	// Embed generates a unit-normalised vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size.
	// All vectors in the corpus must share this dimensionality.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string
}
