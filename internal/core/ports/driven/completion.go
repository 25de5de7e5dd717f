package driven

import "context"

// CompletionService provides generative text completion for answers and
// summaries. This is an optional capability - when it is nil, unreachable or
// unconfigured, callers select the deterministic extractive fallback.
//
// Implementations must be safely callable when unconfigured: they return
// domain.ErrCompletionUnavailable rather than panicking, and map their own
// timeouts to the same error. Callers depend on that sentinel to choose the
// fallback strategy; it is never surfaced as a user-facing failure.
type CompletionService interface {
	// Complete produces text for a prompt. An empty result with a nil error
	// is valid and also selects the fallback at the call site.
	Complete(ctx context.Context, prompt string) (string, error)

	// ModelName returns the name of the completion model being used.
	ModelName() string
}
