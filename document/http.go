package document

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/atomic"
)

// ReadStatus tracks the lifecycle of an HTTP source.
type ReadStatus = int32

const (
	Unread ReadStatus = iota
	Reading
	ReadCompleted
)

// HTTP is a Source backed by an HTTP request, e.g. a Project Gutenberg text
// or a remote PDF.
type HTTP struct {
	status  *atomic.Int32
	client  *http.Client
	method  string
	url     string
	payload io.Reader
	Content
}

var _ Source = (*HTTP)(nil)

// HTTPOption configures an HTTP source.
type HTTPOption func(*HTTP)

func WithHTTPClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = client
	}
}

func WithHTTPMethod(method string) HTTPOption {
	return func(h *HTTP) {
		h.method = method
	}
}

func WithHTTPURL(link string) HTTPOption {
	return func(h *HTTP) {
		h.url = link
	}
}

func WithHTTPPayload(payload io.Reader) HTTPOption {
	return func(h *HTTP) {
		h.payload = payload
	}
}

// NewHTTP creates an HTTP source. A URL is required; method defaults to GET
// and the client to http.DefaultClient.
func NewHTTP(opts ...HTTPOption) (*HTTP, error) {
	h := &HTTP{
		status: atomic.NewInt32(Unread),
		client: http.DefaultClient,
		method: http.MethodGet,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.url == "" {
		return nil, ErrNoURL
	}
	return h, nil
}

// Load performs the request and buffers the response body into the source's
// Content. Concurrent loads of the same source return ErrReading; a
// completed source may be loaded again.
func (h *HTTP) Load(ctx context.Context) error {
	if !h.status.CompareAndSwap(Unread, Reading) &&
		!h.status.CompareAndSwap(ReadCompleted, Reading) {
		return ErrReading
	}
	defer h.status.Store(ReadCompleted)
	req, err := http.NewRequestWithContext(ctx, h.method, h.url, h.payload)
	if err != nil {
		return err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("fetch %s: unexpected status %s", h.url, resp.Status)
	}
	h.SetMeta("url", h.url)
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		h.SetMeta("content-type", ct)
	}
	h.Reset()
	_, err = io.Copy(&h.Content, resp.Body)
	return err
}
