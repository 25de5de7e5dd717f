package extractors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/extractors/plaintext"
)

func TestRegistry_ForMIMEType(t *testing.T) {
	pt := plaintext.New()
	reg := NewRegistry(pt)

	assert.Same(t, driven.Extractor(pt), reg.ForMIMEType("text/plain"))
	assert.IsType(t, &BestEffort{}, reg.ForMIMEType("application/octet-stream"))
	assert.IsType(t, &BestEffort{}, reg.ForMIMEType(""))
}

func TestBestEffort_ValidUTF8(t *testing.T) {
	text, err := (&BestEffort{}).Extract(context.Background(), []byte("héllo wörld"), "application/x-unknown")

	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", text)
}

// TestBestEffort_Binary verifies undecodable bytes yield an empty string,
// never an error - ingestion must still reach ready with zero chunks.
func TestBestEffort_Binary(t *testing.T) {
	binary := []byte{0xff, 0xfe, 0x00, 0x89, 0x50}

	text, err := (&BestEffort{}).Extract(context.Background(), binary, "image/png")

	require.NoError(t, err)
	assert.Empty(t, text)
}
