// Package watch implements a drop-folder watcher. Files created or
// modified in the watched directory are uploaded through the document
// service and picked up by the ingestion pipeline from there.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

// mimeByExtension maps drop-folder file extensions to upload media types.
// Files with other extensions are ignored rather than rejected.
var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".md":   "text/plain",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Watcher uploads files dropped into a directory.
type Watcher struct {
	documents driving.DocumentService
	caller    domain.Caller
	dir       string

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher over dir, uploading on behalf of caller.
func NewWatcher(documents driving.DocumentService, caller domain.Caller, dir string) *Watcher {
	return &Watcher{
		documents: documents,
		caller:    caller,
		dir:       dir,
	}
}

// Start begins watching. It returns once the watch is established;
// events are handled on a background goroutine until Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		w.mu.Unlock()
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop(ctx, fsw)

	logger.Info("watching %s for new documents", w.dir)
	return nil
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.stopCh)
	w.mu.Unlock()

	w.wg.Wait()
	return nil
}

// loop consumes filesystem events until stopped.
func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleEvent uploads the file behind a create or write event. Hidden
// files, directories and unknown extensions are skipped.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if isHidden(event.Name) {
		return
	}

	mimeType, ok := mimeByExtension[strings.ToLower(filepath.Ext(event.Name))]
	if !ok {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return
	}

	data, err := os.ReadFile(event.Name)
	if err != nil {
		logger.Warn("could not read %s: %v", event.Name, err)
		return
	}
	if len(data) == 0 {
		// Create events often fire before content lands; the
		// following write event re-triggers the upload.
		return
	}

	doc, err := w.documents.Upload(ctx, w.caller, driving.UploadRequest{
		Title:    filepath.Base(event.Name),
		MIMEType: mimeType,
		Content:  data,
	})
	if err != nil {
		logger.Warn("could not upload %s: %v", event.Name, err)
		return
	}
	logger.Info("uploaded %s as document %s", event.Name, doc.ID)
}

// isHidden reports whether any path element starts with a dot.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if len(part) > 1 && strings.HasPrefix(part, ".") && part != ".." {
			return true
		}
	}
	return false
}
