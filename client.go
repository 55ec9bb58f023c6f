package apicheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/apicheck/core/apierror"
	"github.com/dmitrymomot/apicheck/core/codec"
	"github.com/dmitrymomot/apicheck/core/country"
	"github.com/dmitrymomot/apicheck/core/logger"
	"github.com/dmitrymomot/apicheck/core/transport"
	"github.com/dmitrymomot/apicheck/core/validator"
)

// Version of this client, sent in the User-Agent header.
const Version = "1.0.0"

const (
	opLookup = "lookup"
	opSearch = "search"
)

// Client talks to the ApiCheck API. It is immutable after New and safe for
// concurrent use as long as its transport is.
type Client struct {
	apiKey     string
	endpoint   string
	apiVersion string
	transport  transport.Transport
	codec      codec.Codec
	log        *slog.Logger
	requestID  func() string
}

// New creates a client. The configuration must carry an API key; zero-valued
// endpoint, version and timeout fall back to the package defaults.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint,
		apiVersion: cfg.APIVersion,
		codec:      codec.JSON(),
		log:        logger.Nop(),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.NewHTTP(&http.Client{Timeout: cfg.Timeout})
	}
	c.log = c.log.With(logger.Version(Version))
	c.transport = transport.WithLogging(c.transport, c.log)

	return c, nil
}

// MustNew creates a client that panics on invalid config.
func MustNew(cfg Config, opts ...Option) *Client {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewFromEnv creates a client from APICHECK_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// lookupFields lists the validated lookup fields in request order.
var lookupFields = []struct {
	name     string
	required bool
}{
	{country.FieldPostalCode, true},
	{country.FieldNumber, true},
	{country.FieldNumberAddition, false},
}

// Lookup resolves a full address from a postal code and house number.
// The query must contain "postalcode" and "number"; "numberAddition" is
// optional. All fields are validated and normalized before any request is sent.
func (c *Client) Lookup(ctx context.Context, countryCode string, q Query) (*Result, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	code, err := country.Parse(countryCode)
	if err != nil {
		return nil, err
	}
	if !country.SupportsLookup(code) {
		return nil, fmt.Errorf("%w: no lookup action available for country (%s)", ErrUnsupportedCountry, countryCode)
	}

	params := url.Values{}
	for _, f := range lookupFields {
		v, err := validator.Query(code, q, f.name, f.required)
		if err != nil {
			c.log.DebugContext(ctx, "query validation failed",
				logger.Operation(opLookup),
				logger.Country(code.String()),
				logger.Field(f.name),
				logger.Error(err),
			)
			return nil, err
		}
		if v.Present && v.Text != "" {
			params.Set(f.name, v.Text)
		}
	}

	return c.get(ctx, opLookup, code, "lookup/"+c.apiVersion+"/postalcode/"+code.PathSegment(), params)
}

// LookupAddress is Lookup with the payload decoded into an Address.
func (c *Client) LookupAddress(ctx context.Context, countryCode string, q Query) (*Address, error) {
	res, err := c.Lookup(ctx, countryCode, q)
	if err != nil {
		return nil, err
	}
	var addr Address
	if err := res.Decode(&addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// Search queries the service for candidate matches. The query fields are
// passed through unvalidated.
func (c *Client) Search(ctx context.Context, countryCode, searchType string, q Query) (*Result, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	st, err := ParseSearchType(searchType)
	if err != nil {
		return nil, err
	}

	code, err := country.Parse(countryCode)
	if err != nil {
		return nil, err
	}
	if !country.SupportsSearch(code) {
		return nil, fmt.Errorf("%w: no search action available for country (%s)", ErrUnsupportedCountry, countryCode)
	}

	params := url.Values{}
	for name, value := range q {
		params.Set(name, value)
	}

	return c.get(ctx, opSearch, code, "search/"+c.apiVersion+"/"+string(st)+"/"+code.PathSegment(), params)
}

// ready fails fast when no API key is configured, including on a zero Client.
func (c *Client) ready() error {
	if c == nil || c.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Client) get(ctx context.Context, op string, code country.Code, path string, params url.Values) (*Result, error) {
	u := c.endpoint + "/" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req := &transport.Request{
		Method: http.MethodGet,
		URL:    u,
		Header: http.Header{
			"Accept":                  []string{"application/json"},
			"Content-Type":            []string{"application/json"},
			"X-Api-Key":               []string{c.apiKey},
			"User-Agent":              []string{"apicheck-go/" + Version},
			transport.HeaderRequestID: []string{c.requestID()},
		},
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		if !errors.Is(err, ErrTransport) {
			err = fmt.Errorf("%w: %w", ErrTransport, err)
		}
		return nil, err
	}

	res, err := c.parse(resp)
	if err != nil {
		var apiErr *apierror.Error
		if errors.As(err, &apiErr) {
			c.log.WarnContext(ctx, "api error",
				logger.Operation(op),
				logger.Country(code.String()),
				logger.RequestID(req.Header.Get(transport.HeaderRequestID)),
				logger.Group("response",
					logger.StatusCode(apiErr.StatusCode),
					logger.ErrorKind(apiErr.Kind.String()),
					logger.Key("code", remoteCode(apiErr.Code)),
				),
				logger.Error(err),
			)
		}
		return nil, err
	}
	return res, nil
}

// remoteCode returns nil for an empty code so the attribute is dropped.
func remoteCode(code string) any {
	if code == "" {
		return nil
	}
	return code
}

// parse turns a response into a Result or an error. Non-2xx responses are
// classified using whatever error envelope decodes; a body that does not
// decode is classified by status alone.
func (c *Client) parse(resp *transport.Response) (*Result, error) {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, fmt.Errorf("%w (status %d)", transport.ErrEmptyBody, resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var body apierror.Body
		if err := c.codec.Decode(resp.Body, &body); err != nil {
			return nil, apierror.Classify(resp.StatusCode, nil)
		}
		return nil, apierror.Classify(resp.StatusCode, &body)
	}

	var envelope map[string]codec.RawMessage
	if err := c.codec.Decode(resp.Body, &envelope); err != nil {
		return nil, err
	}
	data, ok := envelope["data"]
	if !ok {
		return nil, fmt.Errorf("%w: response has no data member: %s", ErrDecode, strings.TrimSpace(string(resp.Body)))
	}
	if len(data) == 0 {
		data = codec.RawMessage("null")
	}

	return &Result{data: data, codec: c.codec}, nil
}
