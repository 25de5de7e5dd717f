package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	askTopK int
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [doc-id] [question]",
	Short: "Ask a question about a document",
	Long: `Answers a question from the most relevant chunks of a single document.
With a generation backend configured the answer is generated prose;
without one it is the supporting text verbatim. Citations point at the
chunks the answer draws on either way.`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVar(&askTopK, "top-k", 5, "number of chunks to answer from (1-10)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if retriever == nil {
		return errors.New("retriever not configured")
	}

	answer, err := retriever.Ask(cmd.Context(), currentCaller(), args[0], args[1], askTopK)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)
	if len(answer.Citations) > 0 {
		cmd.Println()
		cmd.Println("Citations:")
		for _, c := range answer.Citations {
			cmd.Printf("  page %d (%.4f)  %s\n", c.Page, c.Score, c.ChunkID)
		}
	}
	cmd.Printf("\nModel: %s\n", answer.Model)
	return nil
}
