package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var summarySentences int

var summaryCmd = &cobra.Command{
	Use:   "summary [doc-id]",
	Short: "Summarise a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summarySentences, "sentences", 3, "target summary length in sentences (1-10)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if retriever == nil {
		return errors.New("retriever not configured")
	}

	summary, err := retriever.Summarize(cmd.Context(), currentCaller(), args[0], summarySentences)
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	cmd.Println(summary.Text)
	cmd.Printf("\nModel: %s\n", summary.Model)
	return nil
}
