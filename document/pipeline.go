package document

import (
	"context"

	"github.com/rs/xid"

	semchunk "github.com/dominictarro/semchunk-go"
)

// DocumentChunk is one chunk of an ingested document, ready for embedding or
// indexing downstream.
type DocumentChunk struct {
	// ID is a unique identifier for the chunk
	ID string `json:"id"`
	// Index is the position of the chunk within its document
	Index int `json:"index"`
	// Text contains the chunk content
	Text string `json:"text"`
	// TokenCount is the number of tokens in the chunk
	TokenCount int `json:"token_count"`
	// Meta carries the source document's metadata
	Meta map[string]string `json:"meta,omitempty"`
}

// Pipeline loads a source, extracts its text with a parser and splits the
// result into token-bounded chunks.
type Pipeline struct {
	parser  Parser
	chunker *semchunk.Chunker
}

func NewPipeline(parser Parser, chunker *semchunk.Chunker) *Pipeline {
	return &Pipeline{
		parser:  parser,
		chunker: chunker,
	}
}

// Run ingests src and returns its ordered document chunks. Source metadata is
// propagated onto every chunk.
func (p *Pipeline) Run(ctx context.Context, src Source) ([]DocumentChunk, error) {
	if err := src.Load(ctx); err != nil {
		return nil, err
	}
	var extracted Content
	if err := p.parser.Parse(ctx, src.Reader(), &extracted); err != nil {
		return nil, err
	}
	chunks, err := p.chunker.Chunks(extracted.String())
	if err != nil {
		return nil, err
	}
	out := make([]DocumentChunk, 0, len(chunks))
	for i, ch := range chunks {
		out = append(out, DocumentChunk{
			ID:         xid.New().String(),
			Index:      i,
			Text:       ch.Text,
			TokenCount: ch.TokenCount,
			Meta:       src.Meta(),
		})
	}
	return out, nil
}
