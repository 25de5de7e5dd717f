package driven

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// DocumentStore persists documents and chunks.
// Backed by SQLite for durable storage, or in-memory for tests.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns documents owned by ownerID, newest first.
	// An empty ownerID returns all documents.
	ListDocuments(ctx context.Context, ownerID string) ([]domain.Document, error)

	// DeleteDocument removes a document and its chunks.
	DeleteDocument(ctx context.Context, id string) error

	// GetChunks retrieves a document's chunks ordered by page.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// ReplaceChunks atomically swaps the full chunk set for a document.
	// Readers never observe a mix of old and new chunks.
	ReplaceChunks(ctx context.Context, documentID string, chunks []domain.Chunk) error

	// ListCandidateChunks returns up to limit chunks whose text matches any
	// whitespace-separated term of keywordHint, case-insensitively. An empty
	// hint matches all chunks. This is a cheap prefilter that bounds the
	// ranking candidate set; it stands in for a real inverted index.
	ListCandidateChunks(ctx context.Context, keywordHint string, limit int) ([]domain.Chunk, error)
}
