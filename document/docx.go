package document

import (
	"bytes"
	"context"
	"io"

	"github.com/fumiama/go-docx"
)

// Docx is a parser which extracts paragraph and table text from a docx
// document, separated by blank lines.
type Docx struct{}

var _ Parser = (*Docx)(nil)

// Parse extracts docx text from a bytes.Reader and writes it to an io.Writer.
func (d *Docx) Parse(_ context.Context, reader *bytes.Reader, writer io.Writer) error {
	doc, err := docx.Parse(reader, reader.Size())
	if err != nil {
		return err
	}
	for idx, it := range doc.Document.Body.Items {
		var content string
		switch t := it.(type) {
		case *docx.Paragraph:
			content = t.String()
		case *docx.Table:
			content = t.String()
		}
		if idx > 0 {
			if _, err := writer.Write([]byte{'\n', '\n'}); err != nil {
				return err
			}
		}
		if _, err := writer.Write([]byte(content)); err != nil {
			return err
		}
	}
	return nil
}
