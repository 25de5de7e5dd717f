// Package plaintext extracts text from plain-text media verbatim.
package plaintext

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain-text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/markdown",
		"text/csv",
		"text/html",
		"application/json",
		"application/xml",
	}
}

// Extract returns the artifact's bytes decoded as text verbatim.
func (e *Extractor) Extract(_ context.Context, data []byte, _ string) (string, error) {
	return string(data), nil
}
