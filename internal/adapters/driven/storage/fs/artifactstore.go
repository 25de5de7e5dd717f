// Package fs provides a filesystem-backed artifact store.
//
// Artifacts are content-addressed: the handle is the SHA-256 hex digest
// of the content, and each artifact is a file named by its handle under
// the artifacts directory. Storing the same bytes twice is a no-op.
package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// handlePattern guards against path traversal via crafted handles.
var handlePattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ArtifactStore stores artifacts as files under a directory.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates an artifact store rooted at dataDir/artifacts.
func NewArtifactStore(dataDir string) (*ArtifactStore, error) {
	dir := filepath.Join(dataDir, "artifacts")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating artifacts directory: %w", err)
	}
	return &ArtifactStore{dir: dir}, nil
}

// Put stores data and returns its content-addressed handle.
func (s *ArtifactStore) Put(_ context.Context, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	handle := hex.EncodeToString(sum[:])
	path := filepath.Join(s.dir, handle)

	if _, err := os.Stat(path); err == nil {
		return handle, nil // Already stored
	}

	// Write to a temp file first so a crash never leaves a partial
	// artifact under its final name.
	tmp, err := os.CreateTemp(s.dir, "put-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("writing artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("closing artifact: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("placing artifact: %w", err)
	}

	return handle, nil
}

// Get retrieves the data for a handle.
func (s *ArtifactStore) Get(_ context.Context, handle string) ([]byte, error) {
	if !handlePattern.MatchString(handle) {
		return nil, fmt.Errorf("%w: invalid artifact handle", domain.ErrNotFound)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, handle))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading artifact: %w", err)
	}
	return data, nil
}
