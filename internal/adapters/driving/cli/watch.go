package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/adapters/driving/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a folder and ingest dropped files",
	Long: `Watches a directory and uploads every supported file dropped into it.
The ingestion worker pool runs for the lifetime of the command; stop
with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}
	if pipeline == nil {
		return errors.New("ingestion pipeline not configured")
	}

	ctx := cmd.Context()

	if err := pipeline.Start(ctx); err != nil {
		return fmt.Errorf("starting pipeline: %w", err)
	}
	defer pipeline.Stop()

	watcher := watch.NewWatcher(documentService, currentCaller(), args[0])
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Stop()

	cmd.Printf("Watching %s. Press Ctrl-C to stop.\n", args[0])

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
	case <-sigCh:
	}

	cmd.Println("Stopping.")
	return nil
}
