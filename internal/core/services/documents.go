package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DefaultTitle is used when an upload carries no title.
const DefaultTitle = "untitled"

// allowedMIMETypes is the upload allow-list. Anything else is rejected
// before any bytes are persisted.
var allowedMIMETypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	"image/png":  true,
	"image/jpeg": true,
}

// DocumentService manages document upload and visibility.
type DocumentService struct {
	docStore  driven.DocumentStore
	artifacts driven.ArtifactStore
	ingestor  driving.Ingestor
	now       func() time.Time
	newID     func() string
}

// NewDocumentService creates a new document service. The ingestor is
// optional; when nil, uploads are stored but not automatically processed.
func NewDocumentService(
	docStore driven.DocumentStore,
	artifacts driven.ArtifactStore,
	ingestor driving.Ingestor,
) *DocumentService {
	return &DocumentService{
		docStore:  docStore,
		artifacts: artifacts,
		ingestor:  ingestor,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Upload stores the artifact, records the document in the uploaded state
// and triggers asynchronous ingestion. The returned document reflects the
// state at creation time.
func (s *DocumentService) Upload(ctx context.Context, caller domain.Caller, req driving.UploadRequest) (*domain.Document, error) {
	if len(req.Content) == 0 {
		return nil, fmt.Errorf("%w: empty content", domain.ErrInvalidInput)
	}
	if !allowedMIMETypes[req.MIMEType] {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, req.MIMEType)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DefaultTitle
	}

	handle, err := s.artifacts.Put(ctx, req.Content)
	if err != nil {
		return nil, fmt.Errorf("storing artifact: %w", err)
	}

	checksum := sha256.Sum256(req.Content)
	now := s.now().UTC()

	doc := &domain.Document{
		ID:           s.newID(),
		OwnerID:      caller.PrincipalID,
		Title:        title,
		MIMEType:     req.MIMEType,
		SizeBytes:    int64(len(req.Content)),
		Checksum:     hex.EncodeToString(checksum[:]),
		Status:       domain.StatusUploaded,
		OriginalPath: handle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	logger.Info("uploaded document %s (%s, %d bytes)", doc.ID, doc.MIMEType, doc.SizeBytes)

	// Fire-and-forget: a full queue or an in-flight run does not fail
	// the upload. The document stays in the uploaded state and can be
	// processed explicitly later.
	if s.ingestor != nil {
		if err := s.ingestor.Enqueue(doc.ID); err != nil {
			logger.Warn("could not enqueue document %s: %v", doc.ID, err)
		}
	}

	return doc, nil
}

// List returns documents visible to the caller, newest first, optionally
// filtered by a case-insensitive title substring.
func (s *DocumentService) List(ctx context.Context, caller domain.Caller, titleFilter string) ([]domain.Document, error) {
	ownerID := caller.PrincipalID
	if caller.Privileged() {
		ownerID = ""
	}

	docs, err := s.docStore.ListDocuments(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	filter := strings.ToLower(strings.TrimSpace(titleFilter))
	if filter == "" {
		return docs, nil
	}

	filtered := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Title), filter) {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}

// Get retrieves a document the caller may access. Missing and forbidden
// documents are indistinguishable.
func (s *DocumentService) Get(ctx context.Context, caller domain.Caller, documentID string) (*domain.Document, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(doc) {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// Delete removes a document and its chunks. The same visibility rule as
// Get applies: missing and forbidden documents fail identically.
func (s *DocumentService) Delete(ctx context.Context, caller domain.Caller, documentID string) error {
	if _, err := s.Get(ctx, caller, documentID); err != nil {
		return err
	}
	if err := s.docStore.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	logger.Info("deleted document %s", documentID)
	return nil
}
