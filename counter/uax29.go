package counter

import (
	"github.com/clipperhouse/uax29/graphemes"
	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"

	semchunk "github.com/dominictarro/semchunk-go"
)

// Words counts UAX #29 word segments, which include punctuation runs and are
// language aware, unlike the plain Whitespace counter.
type Words struct{}

var _ semchunk.TokenCounter = (*Words)(nil)

func (Words) Count(text string) (int, error) {
	return len(words.SegmentAll([]byte(text))), nil
}

// Sentences counts UAX #29 sentence segments.
type Sentences struct{}

var _ semchunk.TokenCounter = (*Sentences)(nil)

func (Sentences) Count(text string) (int, error) {
	return len(sentences.SegmentAll([]byte(text))), nil
}

// Graphemes counts UAX #29 grapheme clusters, i.e. user-perceived characters.
type Graphemes struct{}

var _ semchunk.TokenCounter = (*Graphemes)(nil)

func (Graphemes) Count(text string) (int, error) {
	return len(graphemes.SegmentAll([]byte(text))), nil
}
