package document

import (
	"bytes"
	"context"
	"io"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
)

// HTML is a parser which converts html content to markdown. Markdown keeps
// headings and paragraph structure, which gives the chunker's separator
// hierarchy real boundaries to work with.
type HTML struct {
	opts []converter.ConvertOptionFunc
}

var _ Parser = (*HTML)(nil)

func NewHTML(opts ...converter.ConvertOptionFunc) *HTML {
	return &HTML{
		opts: opts,
	}
}

// Parse converts html content from a bytes.Reader into markdown and writes it
// to an io.Writer.
func (h *HTML) Parse(_ context.Context, reader *bytes.Reader, writer io.Writer) error {
	bs, err := htmltomarkdown.ConvertReader(reader, h.opts...)
	if err != nil {
		return err
	}
	_, err = writer.Write(bs)
	return err
}
