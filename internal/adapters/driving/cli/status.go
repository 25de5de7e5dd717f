package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show corpus size and backend reachability",
	Long: `Prints how many documents are stored (and how many are ready or in
error) and whether the configured remote backends respond.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context(), currentCaller(), "")
	if err != nil {
		return fmt.Errorf("status failed: %w", err)
	}

	var ready, failed int
	for _, doc := range docs {
		switch doc.Status {
		case domain.StatusReady:
			ready++
		case domain.StatusError:
			failed++
		}
	}

	cmd.Printf("Documents:  %d (%d ready, %d error)\n", len(docs), ready, failed)
	cmd.Printf("Embedding:  %s\n", backendState(cmd.Context(), embeddingPinger, "built-in"))
	cmd.Printf("Completion: %s\n", backendState(cmd.Context(), completionPinger, "not configured (extractive fallback)"))
	return nil
}

// backendState pings a remote backend; whenNil labels the local or
// unconfigured case.
func backendState(ctx context.Context, p pinger, whenNil string) string {
	if p == nil {
		return whenNil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Sprintf("unreachable (%v)", err)
	}
	return "ok"
}
