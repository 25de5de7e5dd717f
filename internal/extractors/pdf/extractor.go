// Package pdf extracts text from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"code.sajari.com/docconv/v2"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// converter abstracts the PDF-to-text conversion for testing.
type converter func(r *bytes.Reader, mimeType string) (string, error)

// Extractor handles PDF documents via docconv, which concatenates
// per-page text in document order.
type Extractor struct {
	convert converter
}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{
		convert: func(r *bytes.Reader, mimeType string) (string, error) {
			res, err := docconv.Convert(r, mimeType, true)
			if err != nil {
				return "", err
			}
			return res.Body, nil
		},
	}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Extract converts the PDF bytes to plain text. A corrupt or unsupported
// structure wraps domain.ErrExtractionFailed; unlike unknown media types
// this is a hard failure recorded on the document.
func (e *Extractor) Extract(_ context.Context, data []byte, mimeType string) (string, error) {
	text, err := e.convert(bytes.NewReader(data), mimeType)
	if err != nil {
		return "", fmt.Errorf("%w: convert pdf: %v", domain.ErrExtractionFailed, err)
	}
	return text, nil
}
