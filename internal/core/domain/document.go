package domain

import "time"

// Status is the ingestion state of a document.
type Status string

// Document lifecycle states. A document starts as StatusUploaded and is
// driven through the remaining states by the ingestion pipeline, which is
// the sole writer of Status, TextPath and ErrorMessage.
const (
	// StatusUploaded means the original artifact is stored but not yet processed.
	StatusUploaded Status = "uploaded"

	// StatusProcessing means an ingestion run is in flight.
	StatusProcessing Status = "processing"

	// StatusReady means extracted text and chunks are available for retrieval.
	StatusReady Status = "ready"

	// StatusError means the last ingestion run failed; ErrorMessage holds the cause.
	StatusError Status = "error"
)

// Valid reports whether s is one of the defined lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusUploaded, StatusProcessing, StatusReady, StatusError:
		return true
	}
	return false
}

// Document represents an uploaded document and its ingestion state.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// OwnerID is the principal that uploaded the document.
	OwnerID string

	// Title is the human-readable title.
	Title string

	// MIMEType is the media type declared at upload.
	MIMEType string

	// SizeBytes is the size of the original artifact.
	SizeBytes int64

	// Checksum is the SHA-256 hex digest of the original artifact.
	Checksum string

	// Status is the current ingestion state.
	Status Status

	// OriginalPath is the artifact store handle of the uploaded bytes.
	OriginalPath string

	// TextPath is the artifact store handle of the extracted plain text.
	// Set once the document first reaches StatusReady.
	TextPath string

	// ErrorMessage holds the failure of the last ingestion run, if any.
	ErrorMessage string

	// CreatedAt is when the document was uploaded.
	CreatedAt time.Time

	// UpdatedAt is when the document was last modified.
	UpdatedAt time.Time
}

// Chunk is a bounded, overlapping span of a document's extracted text.
// It is the unit of embedding and retrieval. The full chunk set of a
// document is replaced as a unit on every (re)processing run.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the owning Document.
	DocumentID string

	// Page is the 1-based ordinal position within the document.
	Page int

	// Text is the literal text span.
	Text string

	// Embedding is the unit-normalised vector representation.
	Embedding []float32
}
