// Package chunker provides fixed-size sliding-window text chunking.
package chunker

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1200

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 150

// Chunker splits text into overlapping fixed-size spans.
// It is a pure, deterministic function of its input: every character of the
// input is covered by at least one span, and adjacent spans overlap by
// exactly the configured amount (except possibly at the boundaries).
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must stay below chunk size or the window never advances
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// ChunkSize returns the configured span size.
func (c *Chunker) ChunkSize() int {
	return c.chunkSize
}

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int {
	return c.overlap
}

// Chunk splits text into ordered spans. Starting at offset 0 it emits
// text[i:min(i+size, len)]; when a span reaches the end of the text it
// stops, otherwise the window advances to end-overlap (clamped to >= 0).
// Empty input produces no spans.
func (c *Chunker) Chunk(text string) []string {
	l := len(text)
	if l == 0 {
		return nil
	}

	step := c.chunkSize - c.overlap
	spans := make([]string, 0, l/step+1)

	i := 0
	for {
		end := i + c.chunkSize
		if end > l {
			end = l
		}
		spans = append(spans, text[i:end])
		if end == l {
			break
		}

		i = end - c.overlap
		if i < 0 {
			i = 0
		}
	}

	return spans
}
