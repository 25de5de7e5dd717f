package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.Retriever = (*RetrievalService)(nil)

// Retrieval defaults and bounds.
const (
	// DefaultSearchLimit is used when the caller passes a non-positive limit.
	DefaultSearchLimit = 10

	// DefaultCandidateLimit bounds the keyword prefilter.
	DefaultCandidateLimit = 500

	// MaxContextChunks caps topK and sentence counts.
	MaxContextChunks = 10
)

// scoredChunk is an intermediate ranking entry.
type scoredChunk struct {
	chunk domain.Chunk
	score float64
}

// RetrievalService answers search, question-answering and summarisation
// requests over ready documents. The completion service is optional; when
// nil or unavailable, answers and summaries come from the extractive
// fallback.
type RetrievalService struct {
	docStore       driven.DocumentStore
	embedder       driven.EmbeddingService
	generative     answerStrategy
	candidateLimit int
}

// NewRetrievalService creates a retrieval service. completions may be nil.
func NewRetrievalService(
	docStore driven.DocumentStore,
	embedder driven.EmbeddingService,
	completions driven.CompletionService,
	candidateLimit int,
) *RetrievalService {
	if candidateLimit <= 0 {
		candidateLimit = DefaultCandidateLimit
	}

	var gen answerStrategy
	if completions != nil {
		gen = &generativeStrategy{completions: completions}
	}

	return &RetrievalService{
		docStore:       docStore,
		embedder:       embedder,
		generative:     gen,
		candidateLimit: candidateLimit,
	}
}

// Search ranks chunks across all documents visible to the caller by
// similarity to the query, most similar first.
func (s *RetrievalService) Search(ctx context.Context, caller domain.Caller, query string, limit int) ([]domain.SearchResult, error) {
	logger.Section("Search")
	logger.Debug("query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	candidates, err := s.docStore.ListCandidateChunks(ctx, query, s.candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	logger.Debug("ranked %d candidates", len(candidates))

	ranked := rankChunks(queryVec, candidates)

	// Resolve owning documents lazily, caching per document, and apply the
	// caller's visibility rule per chunk.
	docs := make(map[string]*domain.Document)
	results := make([]domain.SearchResult, 0, limit)
	for _, sc := range ranked {
		doc, ok := docs[sc.chunk.DocumentID]
		if !ok {
			doc, err = s.docStore.GetDocument(ctx, sc.chunk.DocumentID)
			if err != nil {
				return nil, fmt.Errorf("resolving document %s: %w", sc.chunk.DocumentID, err)
			}
			docs[sc.chunk.DocumentID] = doc
		}
		if !caller.CanAccess(doc) {
			continue
		}

		results = append(results, domain.SearchResult{
			DocumentID: doc.ID,
			Title:      doc.Title,
			ChunkID:    sc.chunk.ID,
			Page:       sc.chunk.Page,
			Score:      domain.RoundScore(sc.score),
			Snippet:    domain.Snippet(sc.chunk.Text),
		})
		if len(results) == limit {
			break
		}
	}

	return results, nil
}

// Ask answers a question from the chunks of a single document.
func (s *RetrievalService) Ask(ctx context.Context, caller domain.Caller, documentID, question string, topK int) (*domain.Answer, error) {
	logger.Section("Ask")

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}
	topK = clamp(topK, 1, MaxContextChunks)

	if _, err := s.accessibleDocument(ctx, caller, documentID); err != nil {
		return nil, err
	}

	questionVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	chunks, err := s.docStore.GetChunks(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("loading chunks: %w", err)
	}

	ranked := rankChunks(questionVec, chunks)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	passages := make([]contextPassage, len(ranked))
	citations := make([]domain.Citation, len(ranked))
	for i, sc := range ranked {
		score := domain.RoundScore(sc.score)
		passages[i] = contextPassage{
			Page:  sc.chunk.Page,
			Score: score,
			Text:  sc.chunk.Text,
		}
		citations[i] = domain.Citation{
			ChunkID: sc.chunk.ID,
			Page:    sc.chunk.Page,
			Score:   score,
		}
	}

	text, model, err := selectAnswer(ctx, s.generative, question, passages)
	if err != nil {
		return nil, err
	}

	return &domain.Answer{
		DocumentID: documentID,
		Question:   question,
		Text:       text,
		Citations:  citations,
		Model:      model,
	}, nil
}

// Summarize produces a summary of the document's extracted text in about
// sentenceCount sentences.
func (s *RetrievalService) Summarize(ctx context.Context, caller domain.Caller, documentID string, sentenceCount int) (*domain.Summary, error) {
	logger.Section("Summarize")

	sentenceCount = clamp(sentenceCount, 1, MaxContextChunks)

	if _, err := s.accessibleDocument(ctx, caller, documentID); err != nil {
		return nil, err
	}

	chunks, err := s.docStore.GetChunks(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("loading chunks: %w", err)
	}

	text := assembleText(chunks)

	summary, model, err := selectSummary(ctx, s.generative, text, sentenceCount)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		DocumentID: documentID,
		Text:       summary,
		Model:      model,
	}, nil
}

// accessibleDocument loads a document and applies the caller's visibility
// rule, collapsing forbidden into not-found.
func (s *RetrievalService) accessibleDocument(ctx context.Context, caller domain.Caller, documentID string) (*domain.Document, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(doc) {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// rankChunks orders chunks by cosine similarity to the query vector,
// most similar first. The sort is stable so equal scores keep their
// candidate order, which makes ranking fully deterministic.
func rankChunks(queryVec []float32, chunks []domain.Chunk) []scoredChunk {
	scored := make([]scoredChunk, len(chunks))
	for i, chunk := range chunks {
		scored[i] = scoredChunk{
			chunk: chunk,
			score: domain.CosineSimilarity(queryVec, chunk.Embedding),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}

// assembleText joins a document's chunks in page order. Chunks overlap,
// so the result repeats some text; for summarisation that redundancy is
// harmless and keeping the join simple keeps it deterministic.
func assembleText(chunks []domain.Chunk) string {
	var b strings.Builder
	for _, chunk := range chunks {
		if b.Len() == 0 {
			b.WriteString(chunk.Text)
			continue
		}
		b.WriteString("\n")
		b.WriteString(chunk.Text)
	}
	return b.String()
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
