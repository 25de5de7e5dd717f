package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

func TestArtifactStore_RoundTrip(t *testing.T) {
	store := NewArtifactStore()
	ctx := context.Background()

	handle, err := store.Put(ctx, []byte("artifact bytes"))
	require.NoError(t, err)
	require.NotEmpty(t, handle)

	data, err := store.Get(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, []byte("artifact bytes"), data)
}

// TestArtifactStore_ContentAddressed verifies identical content shares a handle.
func TestArtifactStore_ContentAddressed(t *testing.T) {
	store := NewArtifactStore()
	ctx := context.Background()

	h1, err := store.Put(ctx, []byte("same"))
	require.NoError(t, err)
	h2, err := store.Put(ctx, []byte("same"))
	require.NoError(t, err)
	h3, err := store.Put(ctx, []byte("different"))
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
}

func TestArtifactStore_GetMissing(t *testing.T) {
	store := NewArtifactStore()

	_, err := store.Get(context.Background(), "deadbeef")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
