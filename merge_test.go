package semchunk

import (
	"testing"
)

func TestMergeGreedy(t *testing.T) {
	st := newTestState("aa bb cc dd", 3)
	pieces := []Chunk{
		{Text: "aa", TokenCount: 1, Start: 0, End: 2},
		{Text: "bb", TokenCount: 1, Start: 3, End: 5},
		{Text: "cc", TokenCount: 1, Start: 6, End: 8},
		{Text: "dd", TokenCount: 1, Start: 9, End: 11},
	}
	got, err := st.merge(pieces)
	if err != nil {
		t.Fatal(err)
	}
	want := []Chunk{
		{Text: "aa bb cc", TokenCount: 3, Start: 0, End: 8},
		{Text: "dd", TokenCount: 1, Start: 9, End: 11},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d chunks %v, want %d", len(got), got, len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMergeRestoresDroppedSeparator(t *testing.T) {
	st := newTestState("aa\n\nbb", 2)
	pieces := []Chunk{
		{Text: "aa", TokenCount: 1, Start: 0, End: 2},
		{Text: "bb", TokenCount: 1, Start: 4, End: 6},
	}
	got, err := st.merge(pieces)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d chunks, want 1", len(got))
	}
	if got[0].Text != "aa\n\nbb" {
		t.Errorf("merged text = %q, want the separator restored", got[0].Text)
	}
}

func TestMergeRejectsOverBudgetRecount(t *testing.T) {
	// A rune counter sees the space restored between the two spans, so the
	// merged chunk would count 5 against a budget of 4. The piece counts
	// alone pass the pre-check; the recount must reject the merge.
	st := newTestState("ab cd", 4)
	st.counter = CounterFunc(func(text string) (int, error) {
		return len([]rune(text)), nil
	})
	pieces := []Chunk{
		{Text: "ab", TokenCount: 2, Start: 0, End: 2},
		{Text: "cd", TokenCount: 2, Start: 3, End: 5},
	}
	got, err := st.merge(pieces)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d chunks %v, want the pair kept apart", len(got), got)
	}
	for i := range got {
		if got[i] != pieces[i] {
			t.Errorf("chunk %d = %+v, want %+v", i, got[i], pieces[i])
		}
	}
}

func TestMergeLeavesOversizedPairsAlone(t *testing.T) {
	st := newTestState("aa bb cc dd", 3)
	pieces := []Chunk{
		{Text: "aa bb", TokenCount: 2, Start: 0, End: 5},
		{Text: "cc dd", TokenCount: 2, Start: 6, End: 11},
	}
	got, err := st.merge(pieces)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d chunks, want the pair untouched", len(got))
	}
}

func TestMergeShortInputs(t *testing.T) {
	st := newTestState("aa", 3)
	if got, err := st.merge(nil); err != nil || len(got) != 0 {
		t.Errorf("merge(nil) = %v, %v", got, err)
	}
	one := []Chunk{{Text: "aa", TokenCount: 1, Start: 0, End: 2}}
	got, err := st.merge(one)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != one[0] {
		t.Errorf("merge of a single chunk = %v, want it unchanged", got)
	}
}
