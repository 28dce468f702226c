package semchunk

import (
	"testing"

	"go.uber.org/atomic"
)

func newTestState(text string, budget int) *state {
	return &state{
		text:      text,
		counter:   wordCounter(),
		budget:    budget,
		hierarchy: DefaultHierarchy(),
		cache:     make(map[spanKey]int),
		calls:     atomic.NewInt64(0),
		hits:      atomic.NewInt64(0),
	}
}

func TestBisectPeelsWhileOverTwiceBudget(t *testing.T) {
	// Ten words against a budget of two need five chunks, so the split peels
	// the largest prefix that still fits rather than balancing.
	st := newTestState("a b c d e f g h i j", 2)
	left, right, ok, err := st.bisect(span{0, len(st.text)})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a split")
	}
	if got := st.text[left.start:left.end]; got != "a b" {
		t.Errorf("left = %q, want %q", got, "a b")
	}
	if got := st.text[right.start:right.end]; got != "c d e f g h i j" {
		t.Errorf("right = %q, want %q", got, "c d e f g h i j")
	}
}

func TestBisectBalancesWhenTwoChunksSuffice(t *testing.T) {
	st := newTestState("a b c d", 3)
	left, right, ok, err := st.bisect(span{0, len(st.text)})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a split")
	}
	if got := st.text[left.start:left.end]; got != "a b" {
		t.Errorf("left = %q, want %q", got, "a b")
	}
	if got := st.text[right.start:right.end]; got != "c d" {
		t.Errorf("right = %q, want %q", got, "c d")
	}
}

func TestBisectPrefersCoarserLevel(t *testing.T) {
	// The paragraph break dominates the whitespace candidates even though
	// the whitespace level could balance the words more evenly.
	st := newTestState("one two three four\n\nfive", 3)
	left, right, ok, err := st.bisect(span{0, len(st.text)})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a split")
	}
	if got := st.text[left.start:left.end]; got != "one two three four" {
		t.Errorf("left = %q, want %q", got, "one two three four")
	}
	if got := st.text[right.start:right.end]; got != "five" {
		t.Errorf("right = %q, want %q", got, "five")
	}
}

func TestBisectIndivisible(t *testing.T) {
	st := newTestState("x", 1)
	_, _, ok, err := st.bisect(span{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("a single grapheme should not be splittable")
	}
}

func TestSplitKeepsTextOrder(t *testing.T) {
	st := newTestState("The quick brown fox jumps over the lazy dog.", 2)
	chunks, err := st.split(span{0, len(st.text)})
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		if chunks[i].Start < chunks[i-1].End {
			t.Errorf("chunk %d starts at %d before the previous chunk ends at %d",
				i, chunks[i].Start, chunks[i-1].End)
		}
	}
}

func TestRuneMidpoint(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 0},
		{"ab", 1},
		{"abcd", 2},
		{"aé", 1},
		{"日本", 3},
		{"日本語", 3},
	}
	for _, tt := range tests {
		if got := runeMidpoint(tt.text); got != tt.want {
			t.Errorf("runeMidpoint(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSpawnDepth(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{4, 2},
		{8, 3},
		{9, 3},
	}
	for _, tt := range tests {
		if got := spawnDepth(tt.n); got != tt.want {
			t.Errorf("spawnDepth(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
