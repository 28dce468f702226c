package document

import (
	"bytes"
	"context"
	"io"
)

// Parser extracts text from raw document bytes and writes it to writer.
type Parser interface {
	Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error
}

// PlainText is a Parser that passes the document bytes through unchanged.
type PlainText struct{}

var _ Parser = (*PlainText)(nil)

func (PlainText) Parse(_ context.Context, reader *bytes.Reader, writer io.Writer) error {
	_, err := io.Copy(writer, reader)
	return err
}
