// Package memory provides in-memory store implementations.
// Used by tests and as the default backend when no data directory is
// configured.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	chunks    map[string][]domain.Chunk
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
		chunks:    make(map[string][]domain.Chunk),
	}
}

// SaveDocument stores or updates a document.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = *doc
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns documents owned by ownerID, newest first.
// An empty ownerID returns all documents.
func (s *DocumentStore) ListDocuments(_ context.Context, ownerID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Document
	for id := range s.documents {
		doc := s.documents[id]
		if ownerID == "" || doc.OwnerID == ownerID {
			result = append(result, doc)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}

// DeleteDocument removes a document and its chunks.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	delete(s.chunks, id)
	return nil
}

// GetChunks retrieves a document's chunks ordered by page.
func (s *DocumentStore) GetChunks(_ context.Context, documentID string) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.chunks[documentID]
	if !ok {
		return nil, nil
	}

	result := make([]domain.Chunk, len(stored))
	copy(result, stored)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Page < result[j].Page
	})

	return result, nil
}

// ReplaceChunks atomically swaps the full chunk set for a document.
// The write lock covers the whole swap, so readers never observe a mix of
// old and new chunks.
func (s *DocumentStore) ReplaceChunks(_ context.Context, documentID string, chunks []domain.Chunk) error {
	replacement := make([]domain.Chunk, len(chunks))
	copy(replacement, chunks)

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(replacement) == 0 {
		delete(s.chunks, documentID)
		return nil
	}
	s.chunks[documentID] = replacement
	return nil
}

// ListCandidateChunks returns up to limit chunks matching any term of the
// keyword hint, case-insensitively. An empty hint matches all chunks.
func (s *DocumentStore) ListCandidateChunks(_ context.Context, keywordHint string, limit int) ([]domain.Chunk, error) {
	terms := splitTerms(keywordHint)

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Deterministic iteration order keeps ranking ties stable.
	docIDs := make([]string, 0, len(s.chunks))
	for id := range s.chunks {
		docIDs = append(docIDs, id)
	}
	sort.Strings(docIDs)

	var result []domain.Chunk
	for _, docID := range docIDs {
		for _, chunk := range s.chunks[docID] {
			if limit > 0 && len(result) >= limit {
				return result, nil
			}
			if matchesAny(chunk.Text, terms) {
				result = append(result, chunk)
			}
		}
	}

	return result, nil
}

// splitTerms lower-cases and whitespace-splits a keyword hint.
func splitTerms(hint string) []string {
	return strings.Fields(strings.ToLower(hint))
}

// matchesAny reports whether text contains any of the terms.
// No terms means match everything.
func matchesAny(text string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
