package domain

import "unicode/utf8"

// SnippetLength is the maximum excerpt length returned with a search result.
const SnippetLength = 300

// SearchResult represents a single ranked search hit.
type SearchResult struct {
	// DocumentID is the owning document.
	DocumentID string

	// Title is the owning document's title.
	Title string

	// ChunkID is the matched chunk.
	ChunkID string

	// Page is the chunk's 1-based position within the document.
	Page int

	// Score is the cosine similarity, rounded to 4 decimal places.
	Score float64

	// Snippet is a short excerpt of the matched chunk.
	Snippet string
}

// Citation points an answer back at supporting source text.
// Citations are derived at query time, never stored.
type Citation struct {
	// ChunkID identifies the supporting chunk.
	ChunkID string

	// Page is the chunk's position within the document.
	Page int

	// Score is the similarity to the question, rounded to 4 decimal places.
	Score float64
}

// Answer is the outcome of a question-answering request.
type Answer struct {
	// DocumentID is the document the question was scoped to.
	DocumentID string

	// Question is the caller's question, as asked.
	Question string

	// Text is the prose answer.
	Text string

	// Citations reference the chunks the answer was assembled from,
	// in ranked order. Present regardless of which strategy produced Text.
	Citations []Citation

	// Model labels the producing strategy: a model name for generative
	// answers, "fallback" for extractive ones.
	Model string
}

// Summary is the outcome of a summarisation request.
type Summary struct {
	// DocumentID is the summarised document.
	DocumentID string

	// Text is the summary prose.
	Text string

	// Model labels the producing strategy, as in Answer.
	Model string
}

// Snippet truncates text to at most SnippetLength bytes, backing off to
// the nearest rune boundary so the excerpt stays valid UTF-8.
func Snippet(text string) string {
	if len(text) <= SnippetLength {
		return text
	}
	cut := SnippetLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
