package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/core/ports/driving"
)

var (
	uploadTitle string
	uploadMIME  string
)

// mimeByExtension maps common file extensions to upload media types.
var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".md":   "text/plain",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a document for ingestion",
	Long: `Uploads a file and queues it for ingestion. The media type is derived
from the file extension unless --mime is given. Ingestion runs on the
background worker pool and is drained before the command exits; use
"docquery show" to inspect the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadTitle, "title", "", "document title (defaults to the file name)")
	uploadCmd.Flags().StringVar(&uploadMIME, "mime", "", "media type override")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	if documentService == nil {
		return errors.New("document service not configured")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	mimeType := uploadMIME
	if mimeType == "" {
		mimeType = mimeByExtension[strings.ToLower(filepath.Ext(path))]
		if mimeType == "" {
			return fmt.Errorf("cannot derive media type for %s; pass --mime", path)
		}
	}

	title := uploadTitle
	if title == "" {
		title = filepath.Base(path)
	}

	doc, err := documentService.Upload(cmd.Context(), currentCaller(), driving.UploadRequest{
		Title:    title,
		MIMEType: mimeType,
		Content:  content,
	})
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	cmd.Printf("Uploaded %s\n", doc.Title)
	cmd.Printf("  ID:     %s\n", doc.ID)
	cmd.Printf("  Status: %s\n", doc.Status)
	return nil
}
