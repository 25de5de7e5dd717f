package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func testDocument(id, ownerID string) *domain.Document {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Document{
		ID:           id,
		OwnerID:      ownerID,
		Title:        "report.pdf",
		MIMEType:     "application/pdf",
		SizeBytes:    1024,
		Checksum:     "abc123",
		Status:       domain.StatusUploaded,
		OriginalPath: "artifacts/abc123",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestStore_SaveAndGetDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1", "owner-1")
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.OwnerID, got.OwnerID)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Checksum, got.Checksum)
	assert.Equal(t, domain.StatusUploaded, got.Status)
}

func TestStore_SaveDocument_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1", "owner-1")
	require.NoError(t, store.SaveDocument(ctx, doc))

	doc.Status = domain.StatusReady
	doc.TextPath = "artifacts/text-1"
	doc.UpdatedAt = doc.UpdatedAt.Add(time.Minute)
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReady, got.Status)
	assert.Equal(t, "artifacts/text-1", got.TextPath)
}

func TestStore_GetDocument_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		doc := testDocument(fmt.Sprintf("doc-%d", i), "owner-1")
		doc.UpdatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.SaveDocument(ctx, doc))
	}
	other := testDocument("doc-other", "owner-2")
	require.NoError(t, store.SaveDocument(ctx, other))

	t.Run("filters by owner newest first", func(t *testing.T) {
		docs, err := store.ListDocuments(ctx, "owner-1")
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "doc-2", docs[0].ID)
		assert.Equal(t, "doc-0", docs[2].ID)
	})

	t.Run("empty owner returns all", func(t *testing.T) {
		docs, err := store.ListDocuments(ctx, "")
		require.NoError(t, err)
		assert.Len(t, docs, 4)
	})

	t.Run("unknown owner returns empty", func(t *testing.T) {
		docs, err := store.ListDocuments(ctx, "owner-3")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestStore_DeleteDocument_CascadesChunks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", "owner-1")))
	require.NoError(t, store.ReplaceChunks(ctx, "doc-1", []domain.Chunk{
		{ID: "chunk-1", DocumentID: "doc-1", Page: 0, Text: "hello", Embedding: []float32{0.1, 0.2}},
	}))

	require.NoError(t, store.DeleteDocument(ctx, "doc-1"))

	_, err := store.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	chunks, err := store.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestStore_ReplaceChunks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", "owner-1")))

	first := []domain.Chunk{
		{ID: "chunk-1", DocumentID: "doc-1", Page: 0, Text: "first", Embedding: []float32{1, 0}},
		{ID: "chunk-2", DocumentID: "doc-1", Page: 1, Text: "second", Embedding: []float32{0, 1}},
	}
	require.NoError(t, store.ReplaceChunks(ctx, "doc-1", first))

	second := []domain.Chunk{
		{ID: "chunk-3", DocumentID: "doc-1", Page: 0, Text: "replacement", Embedding: []float32{0.5, 0.5}},
	}
	require.NoError(t, store.ReplaceChunks(ctx, "doc-1", second))

	chunks, err := store.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "chunk-3", chunks[0].ID)
	assert.Equal(t, []float32{0.5, 0.5}, chunks[0].Embedding)
}

func TestStore_GetChunks_OrderedByPage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", "owner-1")))
	require.NoError(t, store.ReplaceChunks(ctx, "doc-1", []domain.Chunk{
		{ID: "chunk-c", DocumentID: "doc-1", Page: 2, Text: "third"},
		{ID: "chunk-a", DocumentID: "doc-1", Page: 0, Text: "first"},
		{ID: "chunk-b", DocumentID: "doc-1", Page: 1, Text: "second"},
	}))

	chunks, err := store.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, "chunk-a", chunks[0].ID)
	assert.Equal(t, "chunk-b", chunks[1].ID)
	assert.Equal(t, "chunk-c", chunks[2].ID)
}

func TestStore_ChunkEmbeddingRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", "owner-1")))
	require.NoError(t, store.ReplaceChunks(ctx, "doc-1", []domain.Chunk{
		{ID: "chunk-1", DocumentID: "doc-1", Page: 1, Text: "hello", Embedding: []float32{0.25, -1.5, 3}},
	}))

	chunks, err := store.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello", chunks[0].Text)
	assert.Equal(t, []float32{0.25, -1.5, 3}, chunks[0].Embedding)
}

func TestStore_ListCandidateChunks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", "owner-1")))
	require.NoError(t, store.ReplaceChunks(ctx, "doc-1", []domain.Chunk{
		{ID: "chunk-1", DocumentID: "doc-1", Page: 0, Text: "The quarterly revenue grew"},
		{ID: "chunk-2", DocumentID: "doc-1", Page: 1, Text: "Staffing costs were flat"},
		{ID: "chunk-3", DocumentID: "doc-1", Page: 2, Text: "Revenue projections for Q3"},
	}))

	t.Run("matches any term case-insensitively", func(t *testing.T) {
		chunks, err := store.ListCandidateChunks(ctx, "REVENUE", 10)
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "chunk-1", chunks[0].ID)
		assert.Equal(t, "chunk-3", chunks[1].ID)
	})

	t.Run("empty hint matches everything", func(t *testing.T) {
		chunks, err := store.ListCandidateChunks(ctx, "", 10)
		require.NoError(t, err)
		assert.Len(t, chunks, 3)
	})

	t.Run("respects limit", func(t *testing.T) {
		chunks, err := store.ListCandidateChunks(ctx, "", 2)
		require.NoError(t, err)
		assert.Len(t, chunks, 2)
	})

	t.Run("no matches returns empty", func(t *testing.T) {
		chunks, err := store.ListCandidateChunks(ctx, "zebra", 10)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})
}

func TestFloat32SliceRoundTrip(t *testing.T) {
	original := []float32{0.1, -2.5, 3.14159, 0, 1e-7}
	assert.Equal(t, original, bytesToFloat32Slice(float32SliceToBytes(original)))
	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
}
