package semchunk

import (
	"sync"

	"go.uber.org/atomic"
)

// span is a half-open byte range into the input text. Spans are views; no
// text is copied until a chunk is materialized.
type span struct{ start, end int }

type spanKey [2]int

func (s span) key() spanKey { return spanKey{s.start, s.end} }
func (s span) len() int     { return s.end - s.start }

// state carries everything one Chunk invocation needs: the immutable backing
// text, the token budget, the separator table and the per-invocation memo
// cache. The cache is keyed by span offsets rather than content so large
// substrings are never hashed, and it is never shared across invocations
// because counters may close over call-specific state. mu is nil for
// sequential runs and guards the cache map when split branches run in
// parallel.
type state struct {
	text      string
	counter   TokenCounter
	budget    int
	hierarchy Hierarchy
	cache     map[spanKey]int
	mu        *sync.Mutex
	calls     *atomic.Int64
	hits      *atomic.Int64
}

// count returns the token count for sp, invoking the counter at most once per
// distinct span within this invocation. Counter errors abort the invocation.
func (st *state) count(sp span) (int, error) {
	key := sp.key()
	if st.mu != nil {
		st.mu.Lock()
	}
	n, ok := st.cache[key]
	if st.mu != nil {
		st.mu.Unlock()
	}
	if ok {
		st.hits.Inc()
		return n, nil
	}
	n, err := st.counter.Count(st.text[sp.start:sp.end])
	st.calls.Inc()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNegativeCount
	}
	// A racing write stores the same value, so last-write-wins is safe.
	if st.mu != nil {
		st.mu.Lock()
	}
	st.cache[key] = n
	if st.mu != nil {
		st.mu.Unlock()
	}
	return n, nil
}
