package driven

import "context"

// ArtifactStore persists opaque binary artifacts: the uploaded original and
// the extracted plain text. Handles are store-specific strings; the core
// treats them as opaque and only ever reads back via Get.
type ArtifactStore interface {
	// Put stores data and returns its handle.
	Put(ctx context.Context, data []byte) (string, error)

	// Get retrieves the data for a handle.
	Get(ctx context.Context, handle string) ([]byte, error)
}
