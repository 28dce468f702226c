package document

import (
	"bytes"
	"context"
	"io"

	"github.com/ledongthuc/pdf"
)

// PDF is a parser which extracts the text content of a PDF, one line per text
// row.
type PDF struct {
	password string
}

var _ Parser = (*PDF)(nil)

// PDFOption configures a PDF parser.
type PDFOption func(*PDF)

// WithPDFPassword decrypts password-protected documents.
func WithPDFPassword(password string) PDFOption {
	return func(p *PDF) {
		p.password = password
	}
}

func NewPDF(opts ...PDFOption) *PDF {
	ret := new(PDF)
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Parse extracts pdf text from a bytes.Reader and writes it to an io.Writer.
func (p *PDF) Parse(_ context.Context, reader *bytes.Reader, writer io.Writer) error {
	var (
		r    *pdf.Reader
		err  error
		size = reader.Size()
	)
	if p.password != "" {
		if r, err = pdf.NewReaderEncrypted(reader, size, func() string {
			return p.password
		}); err != nil {
			return err
		}
	} else {
		if r, err = pdf.NewReader(reader, size); err != nil {
			return err
		}
	}
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		rows, _ := page.GetTextByRow()
		for idx, row := range rows {
			if idx > 0 {
				if _, err := writer.Write([]byte{'\n'}); err != nil {
					return err
				}
			}
			for _, word := range row.Content {
				if _, err := writer.Write([]byte(word.S)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
