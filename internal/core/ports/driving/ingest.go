package driving

import "context"

// Ingestor drives documents through the ingestion state machine.
type Ingestor interface {
	// Enqueue submits a document for asynchronous processing. It never
	// blocks: domain.ErrQueueFull is returned when the work queue is at
	// capacity, domain.ErrIngestInProgress when a run for the same document
	// is already queued or in flight.
	Enqueue(documentID string) error

	// Process runs one ingestion synchronously. The same per-document
	// exclusion applies as for Enqueue. The returned error describes why
	// the run could not complete; processing failures recorded on the
	// document (status error) are also returned.
	Process(ctx context.Context, documentID string) error
}
