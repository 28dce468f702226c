package document

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPlainTextParser(t *testing.T) {
	const body = "line one\nline two"
	var out Content
	var p PlainText
	if err := p.Parse(context.Background(), bytes.NewReader([]byte(body)), &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != body {
		t.Errorf("Parse() wrote %q, want %q", out.String(), body)
	}
}

func TestHTMLParser(t *testing.T) {
	const page = `<html><body>
<h1>Title</h1>
<p>Hello <strong>world</strong>.</p>
<p>Second paragraph.</p>
</body></html>`
	var out Content
	p := NewHTML()
	if err := p.Parse(context.Background(), bytes.NewReader([]byte(page)), &out); err != nil {
		t.Fatal(err)
	}
	md := out.String()
	if !strings.Contains(md, "# Title") {
		t.Errorf("markdown %q lacks the heading", md)
	}
	if !strings.Contains(md, "world") {
		t.Errorf("markdown %q lacks the paragraph text", md)
	}
	if strings.Contains(md, "<p>") {
		t.Errorf("markdown %q still contains html tags", md)
	}
}
