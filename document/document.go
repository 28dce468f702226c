// Package document feeds file, HTTP, PDF, HTML and DOCX content into a
// semchunk Chunker. Sources load raw bytes, parsers extract text from them,
// and Pipeline ties source, parser and chunker together into retrieval-ready
// document chunks.
package document

import (
	"bytes"
	"context"
	"errors"
)

var (
	// ErrReading is returned when a source is asked to load while a load is
	// already in flight.
	ErrReading = errors.New("document is loading")
	// ErrIsDirectory is returned when a file source points at a directory.
	ErrIsDirectory = errors.New("document source must not be a directory")
	// ErrNoURL is returned when an HTTP source is built without a URL.
	ErrNoURL = errors.New("http source requires a URL")
)

// Source is a place document bytes come from. Load fills the source's
// Content; Reader and Meta expose the loaded bytes and source metadata.
type Source interface {
	Load(ctx context.Context) error
	Reader() *bytes.Reader
	Meta() map[string]string
}

// Content holds loaded or extracted document bytes plus source metadata. The
// zero value is ready to use. Content implements io.Writer so parsers can
// write extracted text straight into it.
type Content struct {
	buffer bytes.Buffer
	meta   map[string]string
}

func (c *Content) Write(p []byte) (int, error) {
	return c.buffer.Write(p)
}

// Reader returns a reader over the buffered bytes.
func (c *Content) Reader() *bytes.Reader {
	return bytes.NewReader(c.buffer.Bytes())
}

func (c *Content) String() string {
	return c.buffer.String()
}

func (c *Content) Len() int {
	return c.buffer.Len()
}

// Reset empties the buffer, keeping metadata.
func (c *Content) Reset() {
	c.buffer.Reset()
}

// Meta returns the metadata map, creating it on first use.
func (c *Content) Meta() map[string]string {
	if c.meta == nil {
		c.meta = make(map[string]string)
	}
	return c.meta
}

// SetMeta records a metadata key/value pair.
func (c *Content) SetMeta(key, value string) {
	c.Meta()[key] = value
}
