package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docquery/internal/chunker"
	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

// Ensure IngestPipeline implements the interface.
var _ driving.Ingestor = (*IngestPipeline)(nil)

// Default pipeline sizing.
const (
	DefaultQueueCapacity = 64
	DefaultWorkers       = 2

	// embedConcurrency bounds parallel embedding calls within one run.
	embedConcurrency = 4
)

// PipelineConfig sizes the ingestion pipeline.
type PipelineConfig struct {
	// QueueCapacity bounds the pending work queue. Enqueue rejects with
	// domain.ErrQueueFull once it is reached.
	QueueCapacity int

	// Workers is the number of concurrent ingestion workers.
	Workers int
}

// IngestPipeline drives documents through the ingestion state machine:
// extract text, chunk it, embed the chunks, and swap the chunk set in
// one atomic replacement.
//
// At most one run per document is ever queued or in flight; concurrent
// triggers for the same document are rejected, not interleaved.
type IngestPipeline struct {
	docStore   driven.DocumentStore
	artifacts  driven.ArtifactStore
	extractors driven.ExtractorRegistry
	embedder   driven.EmbeddingService
	chunker    *chunker.Chunker
	now        func() time.Time
	newID      func() string

	queue chan string

	mu       sync.Mutex
	inflight map[string]bool
	running  bool
	stopCh   chan struct{}
	wg       sync.WaitGroup
	workers  int
}

// NewIngestPipeline creates an ingestion pipeline.
func NewIngestPipeline(
	docStore driven.DocumentStore,
	artifacts driven.ArtifactStore,
	extractors driven.ExtractorRegistry,
	embedder driven.EmbeddingService,
	ck *chunker.Chunker,
	cfg PipelineConfig,
) *IngestPipeline {
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = DefaultQueueCapacity
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if ck == nil {
		ck = chunker.New()
	}

	return &IngestPipeline{
		docStore:   docStore,
		artifacts:  artifacts,
		extractors: extractors,
		embedder:   embedder,
		chunker:    ck,
		now:        time.Now,
		newID:      uuid.NewString,
		queue:      make(chan string, cfg.QueueCapacity),
		inflight:   make(map[string]bool),
		workers:    cfg.Workers,
	}
}

// Start launches the worker pool. It returns immediately; workers run
// until Stop is called or ctx is cancelled.
func (p *IngestPipeline) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil // Already running
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.mu.Unlock()

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	return nil
}

// Stop gracefully shuts down the pipeline. Workers finish their
// in-flight runs and drain whatever is still queued before exiting, so
// an enqueued document is never silently lost at shutdown.
func (p *IngestPipeline) Stop() error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	close(p.stopCh)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

// Enqueue submits a document for asynchronous processing. It never blocks.
func (p *IngestPipeline) Enqueue(documentID string) error {
	if documentID == "" {
		return fmt.Errorf("%w: empty document ID", domain.ErrInvalidInput)
	}

	if err := p.reserve(documentID); err != nil {
		return err
	}

	select {
	case p.queue <- documentID:
		return nil
	default:
		p.release(documentID)
		return domain.ErrQueueFull
	}
}

// Process runs one ingestion synchronously. The same per-document
// exclusion applies as for Enqueue.
func (p *IngestPipeline) Process(ctx context.Context, documentID string) error {
	if documentID == "" {
		return fmt.Errorf("%w: empty document ID", domain.ErrInvalidInput)
	}

	if err := p.reserve(documentID); err != nil {
		return err
	}
	defer p.release(documentID)

	return p.run(ctx, documentID)
}

// reserve marks a document in flight, rejecting duplicates.
func (p *IngestPipeline) reserve(documentID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inflight[documentID] {
		return domain.ErrIngestInProgress
	}
	p.inflight[documentID] = true
	return nil
}

// release clears the in-flight mark.
func (p *IngestPipeline) release(documentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, documentID)
}

// worker consumes the queue until stopped.
func (p *IngestPipeline) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			p.drain(ctx)
			return
		case documentID := <-p.queue:
			p.runAndRelease(ctx, documentID)
		}
	}
}

// drain consumes everything still queued at shutdown.
func (p *IngestPipeline) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case documentID := <-p.queue:
			p.runAndRelease(ctx, documentID)
		default:
			return
		}
	}
}

func (p *IngestPipeline) runAndRelease(ctx context.Context, documentID string) {
	if err := p.run(ctx, documentID); err != nil {
		logger.Warn("ingestion of %s failed: %v", documentID, err)
	}
	p.release(documentID)
}

// run executes the ingestion state machine for one document.
func (p *IngestPipeline) run(ctx context.Context, documentID string) error {
	logger.Section("Ingestion")
	logger.Debug("processing document %s", documentID)

	doc, err := p.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}

	// Any persisted status may enter a run; the in-flight reservation is
	// the sole per-document exclusion. A document left in processing by a
	// crashed run is therefore recoverable by triggering it again.
	doc.Status = domain.StatusProcessing
	doc.ErrorMessage = ""
	doc.UpdatedAt = p.now().UTC()
	if err := p.docStore.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("marking document processing: %w", err)
	}

	if err := p.ingest(ctx, doc); err != nil {
		doc.Status = domain.StatusError
		doc.ErrorMessage = err.Error()
		doc.UpdatedAt = p.now().UTC()
		if saveErr := p.docStore.SaveDocument(ctx, doc); saveErr != nil {
			logger.Warn("could not record failure for %s: %v", documentID, saveErr)
		}
		return err
	}

	doc.Status = domain.StatusReady
	doc.ErrorMessage = ""
	doc.UpdatedAt = p.now().UTC()
	if err := p.docStore.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("marking document ready: %w", err)
	}

	logger.Info("document %s is ready", documentID)
	return nil
}

// ingest performs extraction, chunking and embedding for a document that
// has already been marked processing. It mutates doc.TextPath on success.
func (p *IngestPipeline) ingest(ctx context.Context, doc *domain.Document) error {
	data, err := p.artifacts.Get(ctx, doc.OriginalPath)
	if err != nil {
		return fmt.Errorf("loading original artifact: %w", err)
	}

	extractor := p.extractors.ForMIMEType(doc.MIMEType)
	text, err := extractor.Extract(ctx, data, doc.MIMEType)
	if err != nil {
		return err
	}

	textHandle, err := p.artifacts.Put(ctx, []byte(text))
	if err != nil {
		return fmt.Errorf("storing extracted text: %w", err)
	}
	doc.TextPath = textHandle

	spans := p.chunker.Chunk(text)
	logger.Debug("chunked document %s into %d pieces", doc.ID, len(spans))

	chunks := make([]domain.Chunk, len(spans))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)
	for i, span := range spans {
		g.Go(func() error {
			embedding, err := p.embedder.Embed(gctx, span)
			if err != nil {
				return fmt.Errorf("embedding chunk %d: %w", i+1, err)
			}
			chunks[i] = domain.Chunk{
				ID:         p.newID(),
				DocumentID: doc.ID,
				Page:       i + 1,
				Text:       span,
				Embedding:  embedding,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// A document whose extracted text is empty still becomes ready, with
	// zero chunks. Retrieval over it simply finds nothing.
	if err := p.docStore.ReplaceChunks(ctx, doc.ID, chunks); err != nil {
		return fmt.Errorf("replacing chunks: %w", err)
	}
	return nil
}
