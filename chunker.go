package semchunk

import (
	"sync"

	"go.uber.org/atomic"
)

// TokenCounter defines the interface for counting tokens in a string.
// This abstraction allows for different tokenization strategies (e.g., words,
// subwords). Count must be deterministic for identical content and must
// return a non-negative count. An error aborts the surrounding Chunk call and
// is returned to the caller unmodified.
type TokenCounter interface {
	// Count returns the number of tokens in the given text according to the
	// implementation's tokenization strategy.
	Count(text string) (int, error)
}

// CounterFunc adapts a plain function to the TokenCounter interface.
type CounterFunc func(text string) (int, error)

// Count calls f(text).
func (f CounterFunc) Count(text string) (int, error) {
	return f(text)
}

// Chunk represents a piece of text with associated metadata for tracking its
// position and size within the original input.
type Chunk struct {
	// Text contains the actual content of the chunk
	Text string
	// TokenCount is the memoized number of tokens in this chunk
	TokenCount int
	// Start is the byte offset of the chunk within the input text
	Start int
	// End is the byte offset one past the last byte of the chunk
	End int
}

// Stats reports cumulative work performed by a Chunker across all of its
// Chunk calls.
type Stats struct {
	// CounterCalls is the number of times the token counter was invoked.
	CounterCalls int64
	// CacheHits is the number of counts served from the per-call memo cache.
	CacheHits int64
}

// Chunker splits text into chunks of at most chunkSize tokens, as measured by
// the configured TokenCounter. A Chunker is safe for concurrent use as long
// as its counter is.
type Chunker struct {
	chunkSize   int
	counter     TokenCounter
	hierarchy   Hierarchy
	concurrency int

	counterCalls atomic.Int64
	cacheHits    atomic.Int64
}

// Option is a function type for configuring Chunker instances.
// This follows the functional options pattern for clean and flexible
// configuration.
type Option func(*Chunker)

// WithHierarchy replaces the default separator hierarchy.
func WithHierarchy(h Hierarchy) Option {
	return func(c *Chunker) {
		c.hierarchy = h
	}
}

// WithConcurrency allows up to n split branches to be evaluated in parallel.
// The token counter must be safe for concurrent use when n > 1. The default
// (and any n < 2) keeps the splitter fully sequential.
func WithConcurrency(n int) Option {
	return func(c *Chunker) {
		c.concurrency = n
	}
}

// New creates a Chunker that produces chunks of at most chunkSize tokens
// according to counter. It fails when chunkSize is not positive or counter is
// nil.
func New(chunkSize int, counter TokenCounter, opts ...Option) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if counter == nil {
		return nil, ErrNilCounter
	}
	c := &Chunker{
		chunkSize:   chunkSize,
		counter:     counter,
		hierarchy:   DefaultHierarchy(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.concurrency < 1 {
		c.concurrency = 1
	}
	return c, nil
}

// Chunk splits text into an ordered sequence of chunk strings. An empty
// input yields no chunks. The only failure mode is a failing token counter,
// whose error is propagated verbatim.
func (c *Chunker) Chunk(text string) ([]string, error) {
	chunks, err := c.Chunks(text)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(chunks))
	for i, ch := range chunks {
		out[i] = ch.Text
	}
	return out, nil
}

// Chunks is like Chunk but returns chunk metadata alongside the text: the
// memoized token count and the byte offsets of each chunk within text.
func (c *Chunker) Chunks(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}
	st := &state{
		text:      text,
		counter:   c.counter,
		budget:    c.chunkSize,
		hierarchy: c.hierarchy,
		cache:     make(map[spanKey]int),
		calls:     &c.counterCalls,
		hits:      &c.cacheHits,
	}
	whole := span{0, len(text)}
	var (
		chunks []Chunk
		err    error
	)
	if c.concurrency > 1 {
		st.mu = new(sync.Mutex)
		chunks, err = st.splitParallel(whole, spawnDepth(c.concurrency))
	} else {
		chunks, err = st.split(whole)
	}
	if err != nil {
		return nil, err
	}
	chunks, err = st.merge(chunks)
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// Stats returns cumulative counter-call and cache-hit totals for this
// Chunker.
func (c *Chunker) Stats() Stats {
	return Stats{
		CounterCalls: c.counterCalls.Load(),
		CacheHits:    c.cacheHits.Load(),
	}
}

// spawnDepth bounds how deep the parallel splitter forks goroutine pairs so
// that at most ~n branches run concurrently.
func spawnDepth(n int) int {
	depth := 0
	for n > 1 {
		n >>= 1
		depth++
	}
	return depth
}
