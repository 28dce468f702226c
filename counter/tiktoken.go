package counter

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	semchunk "github.com/dominictarro/semchunk-go"
)

// TikToken counts tokens with the tiktoken library, which implements the BPE
// tokenization schemes used by OpenAI models.
type TikToken struct {
	tke *tiktoken.Tiktoken
}

var _ semchunk.TokenCounter = (*TikToken)(nil)

// NewTikToken creates a TikToken counter for the named encoding.
// Common encodings include:
// - "cl100k_base" (GPT-4, ChatGPT)
// - "p50k_base" (GPT-3)
// - "r50k_base" (Codex)
func NewTikToken(encoding string) (*TikToken, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	return &TikToken{tke: tke}, nil
}

// NewTikTokenForModel creates a TikToken counter for the encoding used by the
// named model, e.g. "gpt-4o".
func NewTikTokenForModel(model string) (*TikToken, error) {
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding for model: %w", err)
	}
	return &TikToken{tke: tke}, nil
}

// Count returns the exact number of tokens in the text according to the
// configured encoding.
func (t *TikToken) Count(text string) (int, error) {
	return len(t.tke.Encode(text, nil, nil)), nil
}
