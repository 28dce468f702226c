// Package counter provides ready-made token counters for semchunk chunkers.
// Counters range from a trivial whitespace word count to BPE tokenization via
// tiktoken and Unicode text segmentation via UAX #29. All counters here are
// stateless and safe for concurrent use.
package counter

import (
	"strings"

	semchunk "github.com/dominictarro/semchunk-go"
)

// Whitespace counts whitespace-delimited words. It is suitable for basic use
// cases but does not reflect the subword tokenization used by language
// models.
type Whitespace struct{}

var _ semchunk.TokenCounter = (*Whitespace)(nil)

// Count returns the number of words in the text, using whitespace as a
// delimiter.
func (Whitespace) Count(text string) (int, error) {
	return len(strings.Fields(text)), nil
}
