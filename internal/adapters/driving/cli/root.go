// Package cli implements the docquery command line interface.
//
// Commands are thin: they parse flags and arguments, call the driving
// port services, and format output. All wiring of stores and services
// happens once in Execute.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/adapters/driven/completion/ollama"
	configfile "github.com/custodia-labs/docquery/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docquery/internal/adapters/driven/embedding/hash"
	ollamaembed "github.com/custodia-labs/docquery/internal/adapters/driven/embedding/ollama"
	fsstore "github.com/custodia-labs/docquery/internal/adapters/driven/storage/fs"
	"github.com/custodia-labs/docquery/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docquery/internal/chunker"
	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/core/services"
	"github.com/custodia-labs/docquery/internal/extractors"
	"github.com/custodia-labs/docquery/internal/extractors/docx"
	"github.com/custodia-labs/docquery/internal/extractors/pdf"
	"github.com/custodia-labs/docquery/internal/extractors/plaintext"
	"github.com/custodia-labs/docquery/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services the commands call. Wired in Execute; tests substitute fakes.
var (
	documentService driving.DocumentService
	retriever       driving.Retriever
	ingestor        driving.Ingestor
)

// pipeline keeps a handle on the concrete pipeline for the watch command,
// which needs its Start/Stop lifecycle.
var pipeline *services.IngestPipeline

// pinger is implemented by remote backends that can report reachability.
type pinger interface {
	Ping(ctx context.Context) error
}

// Remote backend handles for the status command; nil when the
// corresponding concern is served locally or not configured.
var (
	embeddingPinger  pinger
	completionPinger pinger
)

var (
	flagVerbose    bool
	flagPrincipal  string
	flagPrivileged bool
)

var rootCmd = &cobra.Command{
	Use:   "docquery",
	Short: "Ingest documents and query them",
	Long: `docquery ingests documents (PDF, DOCX, plain text, images), chunks and
embeds their text, and answers search, question and summary requests
against the resulting corpus.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagPrincipal, "as", "local", "principal to act as")
	rootCmd.PersistentFlags().BoolVar(&flagPrivileged, "privileged", false, "act with privileged visibility")
}

// currentCaller builds the caller identity from the persistent flags.
func currentCaller() domain.Caller {
	role := domain.RoleStandard
	if flagPrivileged {
		role = domain.RolePrivileged
	}
	return domain.Caller{PrincipalID: flagPrincipal, Role: role}
}

// Execute wires the application together and runs the root command.
// The ingestion worker pool runs for the whole invocation; stopping it
// after the command returns drains anything a one-shot command (upload,
// most notably) enqueued, so no document is left behind as uploaded.
func Execute() {
	if err := wireServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := pipeline.Start(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: starting ingestion pipeline: %v\n", err)
		os.Exit(1)
	}

	err := rootCmd.Execute()
	pipeline.Stop()
	if err != nil {
		os.Exit(1)
	}
}

// wireServices builds the real adapter stack behind the driving ports.
func wireServices() error {
	cfg, err := configfile.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	docStore, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docquery", "data")
	}
	artifacts, err := fsstore.NewArtifactStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening artifact store: %w", err)
	}

	registry := extractors.NewRegistry(plaintext.New(), pdf.New(), docx.New())

	var embedder driven.EmbeddingService
	switch cfg.Embedding.Provider {
	case "ollama":
		remote := ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL: cfg.Ollama.BaseURL,
			Model:   cfg.Embedding.Model,
		})
		embedder = remote
		embeddingPinger = remote
	default:
		embedder = hash.New(cfg.Ingest.EmbeddingDims)
	}

	var completions driven.CompletionService
	if cfg.Ollama.BaseURL != "" {
		remote := ollama.NewCompletionService(ollama.Config{
			BaseURL: cfg.Ollama.BaseURL,
			Model:   cfg.Ollama.Model,
			Timeout: cfg.Ollama.Timeout,
		})
		completions = remote
		completionPinger = remote
	}

	pipeline = services.NewIngestPipeline(
		docStore,
		artifacts,
		registry,
		embedder,
		chunker.New(
			chunker.WithChunkSize(cfg.Ingest.ChunkSize),
			chunker.WithOverlap(cfg.Ingest.ChunkOverlap),
		),
		services.PipelineConfig{
			QueueCapacity: cfg.Ingest.QueueCapacity,
			Workers:       cfg.Ingest.Workers,
		},
	)

	ingestor = pipeline
	documentService = services.NewDocumentService(docStore, artifacts, pipeline)
	retriever = services.NewRetrievalService(docStore, embedder, completions, cfg.Retrieval.CandidateLimit)

	return nil
}
