package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultChunkSize, cfg.Ingest.ChunkSize)
	assert.Equal(t, DefaultChunkOverlap, cfg.Ingest.ChunkOverlap)
	assert.Equal(t, DefaultQueueCapacity, cfg.Ingest.QueueCapacity)
	assert.Equal(t, DefaultWorkers, cfg.Ingest.Workers)
	assert.Equal(t, DefaultCandidateLimit, cfg.Retrieval.CandidateLimit)
	assert.Equal(t, DefaultOllamaModel, cfg.Ollama.Model)
	assert.Empty(t, cfg.Ollama.BaseURL)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
data_dir = "/var/lib/docquery"

[ingest]
chunk_size = 800

[ollama]
base_url = "http://localhost:11434"
model = "mistral"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/docquery", cfg.DataDir)
	assert.Equal(t, 800, cfg.Ingest.ChunkSize)
	assert.Equal(t, DefaultChunkOverlap, cfg.Ingest.ChunkOverlap)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "mistral", cfg.Ollama.Model)
	assert.Equal(t, DefaultOllamaTimeout, cfg.Ollama.Timeout)
}

func TestLoad_InvalidValuesAreClamped(t *testing.T) {
	dir := t.TempDir()
	content := `
[ingest]
chunk_size = -10
workers = 0
queue_capacity = -1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultChunkSize, cfg.Ingest.ChunkSize)
	assert.Equal(t, DefaultWorkers, cfg.Ingest.Workers)
	assert.Equal(t, DefaultQueueCapacity, cfg.Ingest.QueueCapacity)
}

func TestLoad_MalformedFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml"), 0600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.DataDir = "/tmp/docquery-data"
	cfg.Ingest.ChunkSize = 600
	cfg.Ollama.BaseURL = "http://ollama:11434"
	cfg.Ollama.Timeout = 30 * time.Second

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
