package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrTransport indicates a network or protocol fault; the request never
	// produced a usable response.
	ErrTransport = errors.New("transport failure")

	// ErrEmptyBody indicates the service answered without a response body.
	ErrEmptyBody = fmt.Errorf("%w: response has no body", ErrTransport)
)

// Request is a single outgoing call.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response carries the status and the fully read body. Non-2xx statuses are
// regular responses, not errors.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport sends a request and returns the response. Implementations must
// only return an error for genuine network or protocol faults.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Func adapts an ordinary function to the Transport interface.
type Func func(ctx context.Context, req *Request) (*Response, error)

// Send calls f(ctx, req).
func (f Func) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// HTTP is a Transport backed by net/http. It is safe for concurrent use.
type HTTP struct {
	client *http.Client
}

// NewHTTP creates a net/http transport. A nil client falls back to http.DefaultClient.
func NewHTTP(client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{client: client}
}

// Send implements Transport.
func (t *HTTP) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", ErrTransport, err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
