package driven

import "context"

// Extractor converts a stored binary artifact into plain text.
// Each extractor handles specific media types (e.g. PDF, plain text).
type Extractor interface {
	// SupportedMIMETypes returns the media types this extractor handles.
	SupportedMIMETypes() []string

	// Extract converts artifact bytes into plain text. A failure to parse a
	// supported format wraps domain.ErrExtractionFailed. Extractors have no
	// side effects beyond reading the artifact.
	Extract(ctx context.Context, data []byte, mimeType string) (string, error)
}

// ExtractorRegistry selects the extractor for a declared media type.
type ExtractorRegistry interface {
	// ForMIMEType returns the extractor for the given media type.
	// Unknown types get a best-effort fallback that decodes what it can and
	// yields an empty string (not an error) for undecodable binary, so
	// ingestion can still complete with zero chunks.
	ForMIMEType(mimeType string) Extractor
}
