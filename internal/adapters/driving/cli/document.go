package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your documents",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a document's details and ingestion status",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var processCmd = &cobra.Command{
	Use:   "process [doc-id]",
	Short: "Run ingestion for a document synchronously",
	Long: `Runs the ingestion pipeline for a document and waits for it to finish.
Useful to retry a document in the error state or to reprocess after a
configuration change; reprocessing replaces the chunk set entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document and its chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "case-insensitive title substring filter")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context(), currentCaller(), listFilter)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents.")
		return nil
	}

	for _, doc := range docs {
		cmd.Printf("%s  %-10s  %s\n", doc.ID, doc.Status, doc.Title)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), currentCaller(), args[0])
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	cmd.Printf("ID:        %s\n", doc.ID)
	cmd.Printf("Title:     %s\n", doc.Title)
	cmd.Printf("Type:      %s\n", doc.MIMEType)
	cmd.Printf("Size:      %d bytes\n", doc.SizeBytes)
	cmd.Printf("Checksum:  %s\n", doc.Checksum)
	cmd.Printf("Status:    %s\n", doc.Status)
	if doc.ErrorMessage != "" {
		cmd.Printf("Error:     %s\n", doc.ErrorMessage)
	}
	cmd.Printf("Created:   %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("Updated:   %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	if ingestor == nil {
		return errors.New("ingestor not configured")
	}
	if documentService == nil {
		return errors.New("document service not configured")
	}

	// Resolve through the document service first so callers cannot
	// process documents they may not see.
	doc, err := documentService.Get(cmd.Context(), currentCaller(), args[0])
	if err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	if err := ingestor.Process(cmd.Context(), doc.ID); err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	cmd.Printf("Processed %s\n", doc.ID)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Delete(cmd.Context(), currentCaller(), args[0]); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
