package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultChunkSize      = 1200
	DefaultChunkOverlap   = 150
	DefaultEmbeddingDims  = 64
	DefaultQueueCapacity  = 64
	DefaultWorkers        = 2
	DefaultCandidateLimit = 500

	DefaultEmbeddingProvider = "hash"

	DefaultOllamaModel    = "llama3.2"
	DefaultOllamaTimeout  = 120 * time.Second
)

// Config holds all docquery settings. An instance is loaded once at startup
// and passed to the components that need it.
type Config struct {
	// DataDir is where the metadata database and artifacts live.
	// Defaults to ~/.docquery/data.
	DataDir string `toml:"data_dir"`

	Ingest    IngestConfig    `toml:"ingest"`
	Retrieval RetrievalConfig `toml:"retrieval"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Ollama    OllamaConfig    `toml:"ollama"`
}

// EmbeddingConfig selects the embedding backend. The default "hash"
// provider is the built-in deterministic embedder; "ollama" uses the
// Ollama API at ollama.base_url. All documents must be ingested with
// one provider; switching requires reprocessing the corpus.
type EmbeddingConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
}

// IngestConfig controls chunking and the background processing pipeline.
type IngestConfig struct {
	// ChunkSize is the sliding-window chunk length in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the number of characters shared between
	// consecutive chunks.
	ChunkOverlap int `toml:"chunk_overlap"`

	// EmbeddingDims is the embedding vector dimensionality.
	EmbeddingDims int `toml:"embedding_dims"`

	// QueueCapacity bounds the pending ingestion queue.
	QueueCapacity int `toml:"queue_capacity"`

	// Workers is the number of concurrent ingestion workers.
	Workers int `toml:"workers"`
}

// RetrievalConfig controls search behaviour.
type RetrievalConfig struct {
	// CandidateLimit bounds the keyword prefilter before ranking.
	CandidateLimit int `toml:"candidate_limit"`
}

// OllamaConfig configures the optional generation backend. An empty
// BaseURL disables generation and retrieval falls back to extractive
// answers.
type OllamaConfig struct {
	BaseURL string        `toml:"base_url"`
	Model   string        `toml:"model"`
	Timeout time.Duration `toml:"timeout"`
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Ingest: IngestConfig{
			ChunkSize:     DefaultChunkSize,
			ChunkOverlap:  DefaultChunkOverlap,
			EmbeddingDims: DefaultEmbeddingDims,
			QueueCapacity: DefaultQueueCapacity,
			Workers:       DefaultWorkers,
		},
		Retrieval: RetrievalConfig{
			CandidateLimit: DefaultCandidateLimit,
		},
		Embedding: EmbeddingConfig{
			Provider: DefaultEmbeddingProvider,
		},
		Ollama: OllamaConfig{
			Model:   DefaultOllamaModel,
			Timeout: DefaultOllamaTimeout,
		},
	}
}

// Load reads config.toml from configDir, applying defaults for anything
// the file omits. If configDir is empty, ~/.docquery is used. A missing
// file yields the defaults.
func Load(configDir string) (Config, error) {
	cfg := Default()

	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".docquery")
	}

	path := filepath.Join(configDir, "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.normalised(), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg.normalised(), nil
}

// Save writes the configuration to config.toml in configDir.
func Save(configDir string, cfg Config) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// normalised clamps invalid values back to defaults so a hand-edited
// file cannot break chunking or the worker pool.
func (c Config) normalised() Config {
	if c.Ingest.ChunkSize <= 0 {
		c.Ingest.ChunkSize = DefaultChunkSize
	}
	if c.Ingest.ChunkOverlap < 0 {
		c.Ingest.ChunkOverlap = DefaultChunkOverlap
	}
	if c.Ingest.EmbeddingDims <= 0 {
		c.Ingest.EmbeddingDims = DefaultEmbeddingDims
	}
	if c.Ingest.QueueCapacity <= 0 {
		c.Ingest.QueueCapacity = DefaultQueueCapacity
	}
	if c.Ingest.Workers <= 0 {
		c.Ingest.Workers = DefaultWorkers
	}
	if c.Retrieval.CandidateLimit <= 0 {
		c.Retrieval.CandidateLimit = DefaultCandidateLimit
	}
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = DefaultEmbeddingProvider
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = DefaultOllamaModel
	}
	if c.Ollama.Timeout <= 0 {
		c.Ollama.Timeout = DefaultOllamaTimeout
	}
	return c
}
