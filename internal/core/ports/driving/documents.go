package driving

import (
	"context"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// UploadRequest carries a new document into the system.
type UploadRequest struct {
	// Title is the display title; defaults to "untitled" when empty.
	Title string

	// MIMEType is the declared media type of Content.
	MIMEType string

	// Content is the raw uploaded bytes.
	Content []byte
}

// DocumentService manages document lifecycle outside of ingestion itself.
type DocumentService interface {
	// Upload stores the artifact, creates the document in the uploaded
	// state, and triggers ingestion fire-and-forget. The returned document
	// reflects the state at creation; ingestion progresses asynchronously.
	Upload(ctx context.Context, caller domain.Caller, req UploadRequest) (*domain.Document, error)

	// List returns documents visible to the caller, newest first,
	// optionally filtered by a case-insensitive title substring.
	List(ctx context.Context, caller domain.Caller, titleFilter string) ([]domain.Document, error)

	// Get retrieves a document the caller may access. Inaccessible and
	// missing documents are indistinguishable (domain.ErrNotFound).
	Get(ctx context.Context, caller domain.Caller, documentID string) (*domain.Document, error)

	// Delete removes a document the caller may access, along with its
	// chunks. Visibility collapses as in Get.
	Delete(ctx context.Context, caller domain.Caller, documentID string) error
}
