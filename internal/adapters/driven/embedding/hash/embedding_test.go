package hash

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func norm(vec []float32) float64 {
	var sum float64
	for _, x := range vec {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// TestEmbed_UnitNorm tests that non-empty text embeds to a unit vector.
func TestEmbed_UnitNorm(t *testing.T) {
	svc := New(64)

	for _, text := range []string{"a", "hello world", "日本語テキスト", "x y z 1 2 3"} {
		vec, err := svc.Embed(context.Background(), text)
		require.NoError(t, err)
		require.Len(t, vec, 64)
		assert.InDelta(t, 1.0, norm(vec), 1e-6, "text %q", text)
	}
}

// TestEmbed_EmptyText tests the zero-vector convention for empty input.
func TestEmbed_EmptyText(t *testing.T) {
	vec, err := New(64).Embed(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, vec, 64)
	assert.Zero(t, norm(vec))
}

// TestEmbed_Deterministic tests bit-identical output for identical input.
func TestEmbed_Deterministic(t *testing.T) {
	svc := New(64)

	a, err := svc.Embed(context.Background(), "the same text")
	require.NoError(t, err)
	b, err := svc.Embed(context.Background(), "the same text")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestEmbed_BucketPlacement tests the character-code modulo bucketing.
func TestEmbed_BucketPlacement(t *testing.T) {
	svc := New(8)

	// 'a' is 97; 97 mod 8 = 1. A single character fills exactly one bucket.
	vec, err := svc.Embed(context.Background(), "a")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, float64(vec[1]), 1e-6)
	for i, x := range vec {
		if i != 1 {
			assert.Zero(t, x, "bucket %d", i)
		}
	}
}

func TestEmbedBatch(t *testing.T) {
	svc := New(16)

	vecs, err := svc.EmbedBatch(context.Background(), []string{"one", "two", "one"})

	require.NoError(t, err)
	require.Len(t, vecs, 3)
	assert.Equal(t, vecs[0], vecs[2])
	assert.NotEqual(t, vecs[0], vecs[1])
}

func TestDimensions_Default(t *testing.T) {
	assert.Equal(t, DefaultDimensions, New(0).Dimensions())
	assert.Equal(t, 128, New(128).Dimensions())
}
