package transport_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicheck/core/logger"
	"github.com/dmitrymomot/apicheck/core/transport"
)

func TestHTTP_Send(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	t.Cleanup(srv.Close)

	tr := transport.NewHTTP(srv.Client())
	resp, err := tr.Send(context.Background(), &transport.Request{
		Method: http.MethodGet,
		URL:    srv.URL + "/lookup",
		Header: http.Header{
			"X-Api-Key": []string{"secret"},
			"Accept":    []string{"application/json"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"data":{}}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestHTTP_NonSuccessStatusIsNotAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":true,"name":"no_match"}`))
	}))
	t.Cleanup(srv.Close)

	resp, err := transport.NewHTTP(srv.Client()).Send(context.Background(), &transport.Request{
		Method: http.MethodGet,
		URL:    srv.URL,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "no_match")
}

func TestHTTP_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := transport.NewHTTP(nil).Send(context.Background(), &transport.Request{
		Method: http.MethodGet,
		URL:    url,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrTransport)
}

func TestHTTP_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := transport.NewHTTP(srv.Client()).Send(ctx, &transport.Request{
		Method: http.MethodGet,
		URL:    srv.URL,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTP_InvalidRequest(t *testing.T) {
	t.Parallel()

	_, err := transport.NewHTTP(nil).Send(context.Background(), &transport.Request{
		Method: "BAD METHOD",
		URL:    "http://example.com",
	})
	assert.ErrorIs(t, err, transport.ErrTransport)
}

func TestHTTP_SendsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_, _ = w.Write(b)
	}))
	t.Cleanup(srv.Close)

	resp, err := transport.NewHTTP(srv.Client()).Send(context.Background(), &transport.Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Body:   []byte(`{"ping":true}`),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ping":true}`, string(resp.Body))
}

func TestErrEmptyBody(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, transport.ErrEmptyBody, transport.ErrTransport)
}

func TestWithLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))

	calls := 0
	next := transport.Func(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
		calls++
		if calls == 2 {
			return nil, errors.Join(transport.ErrTransport, errors.New("connection reset"))
		}
		return &transport.Response{StatusCode: http.StatusOK, Body: []byte("{}")}, nil
	})

	tr := transport.WithLogging(next, log)
	req := &transport.Request{
		Method: http.MethodGet,
		URL:    "https://api.apicheck.nl/lookup/v1/postalcode/nl",
		Header: http.Header{
			transport.HeaderRequestID: []string{"req-1"},
			"X-Api-Key":               []string{"secret"},
		},
	}

	resp, err := tr.Send(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = tr.Send(context.Background(), req)
	assert.ErrorIs(t, err, transport.ErrTransport)

	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "path=/lookup/v1/postalcode/nl")
	assert.Contains(t, out, "status_code=200")
	assert.NotContains(t, out, "secret")
	assert.Equal(t, 2, calls)
}

func TestWithLogging_NilLogger(t *testing.T) {
	t.Parallel()

	next := transport.Func(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
		return &transport.Response{StatusCode: http.StatusTeapot}, nil
	})
	resp, err := transport.WithLogging(next, nil).Send(context.Background(), &transport.Request{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
