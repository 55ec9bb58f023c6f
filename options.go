package apicheck

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/apicheck/core/codec"
	"github.com/dmitrymomot/apicheck/core/transport"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sends requests through the given *http.Client. The client's
// own Timeout takes precedence over Config.Timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.transport = transport.NewHTTP(client)
		}
	}
}

// WithTransport replaces the HTTP transport entirely.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithCodec replaces the JSON codec used for responses.
func WithCodec(cd codec.Codec) Option {
	return func(c *Client) {
		if cd != nil {
			c.codec = cd
		}
	}
}

// WithLogger sets the logger. Requests are logged at debug level and
// classified API errors at warn level.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRequestIDGenerator overrides how X-Request-ID values are produced.
func WithRequestIDGenerator(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.requestID = fn
		}
	}
}
