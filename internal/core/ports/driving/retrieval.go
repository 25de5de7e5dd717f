package driving

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// Retriever answers search, question-answering and summarisation requests.
// All operations are read-only with respect to ingestion state and apply the
// caller's visibility rule.
type Retriever interface {
	// Search ranks chunks across all documents visible to the caller by
	// similarity to the query, most similar first. An empty query is
	// rejected with domain.ErrInvalidInput.
	Search(ctx context.Context, caller domain.Caller, query string, limit int) ([]domain.SearchResult, error)

	// Ask answers a question from the chunks of a single document.
	// topK bounds the context set (clamped to [1,10]). Citations are
	// returned in ranked order regardless of the producing strategy.
	Ask(ctx context.Context, caller domain.Caller, documentID, question string, topK int) (*domain.Answer, error)

	// Summarize produces a summary of the document's extracted text in
	// about sentenceCount sentences (clamped to [1,10]).
	Summarize(ctx context.Context, caller domain.Caller, documentID string, sentenceCount int) (*domain.Summary, error)
}
