package pdf

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	require.Len(t, mimeTypes, 1)
	assert.Contains(t, mimeTypes, "application/pdf")
}

func TestExtract_Success(t *testing.T) {
	e := &Extractor{
		convert: func(_ *bytes.Reader, mimeType string) (string, error) {
			assert.Equal(t, "application/pdf", mimeType)
			return "page one text\npage two text", nil
		},
	}

	text, err := e.Extract(context.Background(), []byte("%PDF-1.7"), "application/pdf")

	require.NoError(t, err)
	assert.Equal(t, "page one text\npage two text", text)
}

// TestExtract_CorruptPDF verifies parse failures wrap ErrExtractionFailed.
func TestExtract_CorruptPDF(t *testing.T) {
	e := &Extractor{
		convert: func(_ *bytes.Reader, _ string) (string, error) {
			return "", errors.New("bad xref table")
		},
	}

	_, err := e.Extract(context.Background(), []byte("not a pdf"), "application/pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.Contains(t, err.Error(), "bad xref table")
}
