package extractors

import (
	"context"
	"unicode/utf8"

	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps media types to extractors.
type Registry struct {
	byMIME   map[string]driven.Extractor
	fallback driven.Extractor
}

// NewRegistry creates a registry over the given extractors.
// Later registrations win on MIME type collisions.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{
		byMIME:   make(map[string]driven.Extractor),
		fallback: &BestEffort{},
	}

	for _, e := range extractors {
		for _, mt := range e.SupportedMIMETypes() {
			r.byMIME[mt] = e
		}
	}

	return r
}

// ForMIMEType returns the extractor registered for mimeType, or the
// best-effort fallback for unknown types.
func (r *Registry) ForMIMEType(mimeType string) driven.Extractor {
	if e, ok := r.byMIME[mimeType]; ok {
		return e
	}
	return r.fallback
}

// Ensure BestEffort implements the interface.
var _ driven.Extractor = (*BestEffort)(nil)

// BestEffort decodes unknown media types on a best-effort basis.
// Valid UTF-8 passes through; anything else yields an empty string with no
// error, so the document still reaches the ready state with zero chunks.
type BestEffort struct{}

// SupportedMIMETypes returns nil; BestEffort is the registry fallback and
// is never selected by MIME type.
func (e *BestEffort) SupportedMIMETypes() []string {
	return nil
}

// Extract returns the bytes as text when they decode as UTF-8, otherwise "".
func (e *BestEffort) Extract(_ context.Context, data []byte, _ string) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	return "", nil
}
