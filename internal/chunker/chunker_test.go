package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk_Table(t *testing.T) {
	tests := []struct {
		input   string
		size    int
		overlap int
		want    []string
	}{
		{input: "abcdefg", size: 3, overlap: 0, want: []string{"abc", "def", "g"}},
		{input: "abcdefg", size: 3, overlap: 1, want: []string{"abc", "cde", "efg"}},
		{input: "abcdefg", size: 9, overlap: 5, want: []string{"abcdefg"}},
		{input: "", size: 9, overlap: 5, want: nil},
		{input: "abcd", size: 4, overlap: 2, want: []string{"abcd"}},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			c := New(WithChunkSize(tt.size), WithOverlap(tt.overlap))
			assert.Equal(t, tt.want, c.Chunk(tt.input))
		})
	}
}

// TestChunk_Boundaries verifies the documented window positions for a
// 3000-character input with size 1200 and overlap 150.
func TestChunk_Boundaries(t *testing.T) {
	text := strings.Repeat("x", 3000)
	c := New()

	spans := c.Chunk(text)
	require.Len(t, spans, 3)
	assert.Equal(t, text[0:1200], spans[0])
	assert.Equal(t, text[1050:2250], spans[1])
	assert.Equal(t, text[2100:3000], spans[2])
}

// TestChunk_Coverage verifies every character appears in at least one span
// and that the overlap-stripped concatenation reproduces the input.
func TestChunk_Coverage(t *testing.T) {
	for _, n := range []int{1, 49, 50, 51, 500, 1234} {
		text := ""
		for i := 0; i < n; i++ {
			text += string(rune('a' + i%26))
		}

		c := New(WithChunkSize(50), WithOverlap(10))
		spans := c.Chunk(text)
		require.NotEmpty(t, spans)

		rebuilt := spans[0]
		for _, s := range spans[1:] {
			rebuilt += s[c.Overlap():]
		}
		assert.Equal(t, text, rebuilt, "length %d", n)
	}
}

// TestChunk_Count verifies the chunk-count formula
// ceil((len - overlap) / (size - overlap)) for inputs longer than one chunk.
func TestChunk_Count(t *testing.T) {
	size, overlap := 100, 20
	step := size - overlap

	for _, n := range []int{101, 180, 181, 500, 1000} {
		text := strings.Repeat("y", n)
		spans := New(WithChunkSize(size), WithOverlap(overlap)).Chunk(text)

		want := (n - overlap + step - 1) / step
		assert.Len(t, spans, want, "length %d", n)
	}
}

// TestNew_OverlapClamped verifies overlap >= size cannot stall the window.
func TestNew_OverlapClamped(t *testing.T) {
	c := New(WithChunkSize(10), WithOverlap(10))
	assert.Less(t, c.Overlap(), c.ChunkSize())

	spans := c.Chunk(strings.Repeat("z", 100))
	assert.NotEmpty(t, spans)
}

// TestChunk_Deterministic verifies identical inputs produce identical spans.
func TestChunk_Deterministic(t *testing.T) {
	text := strings.Repeat("determinism ", 400)
	c := New()

	assert.Equal(t, c.Chunk(text), c.Chunk(text))
}
