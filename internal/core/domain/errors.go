package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist or the caller
	// may not see it. Missing and forbidden documents are deliberately
	// collapsed into this one error to avoid leaking existence.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or missing required input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an upload with a media type outside the
	// allow-list.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtractionFailed indicates the source artifact could not be
	// converted to text. Terminal for that ingestion run; recorded on the
	// document rather than crashing the pipeline.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrCompletionUnavailable indicates the text-completion capability is
	// unconfigured, erroring, or timed out. Never surfaced to callers;
	// it selects the extractive fallback strategy instead.
	ErrCompletionUnavailable = errors.New("completion unavailable")

	// ErrIngestInProgress indicates an ingestion run for the same document
	// is already in flight. Concurrent triggers are rejected, not interleaved.
	ErrIngestInProgress = errors.New("ingestion in progress")

	// ErrQueueFull indicates the ingestion work queue is at capacity.
	ErrQueueFull = errors.New("ingestion queue full")
)
