package transport

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/dmitrymomot/apicheck/core/logger"
)

// WithLogging wraps a Transport and logs every call at debug level, and
// transport faults at error level. The X-API-KEY header is never logged.
func WithLogging(next Transport, log *slog.Logger) Transport {
	if log == nil {
		return next
	}
	return Func(func(ctx context.Context, req *Request) (*Response, error) {
		start := time.Now()
		attrs := []slog.Attr{
			logger.Component("apicheck.transport"),
			logger.Method(req.Method),
			logger.URL(req.URL),
			logger.Path(urlPath(req.URL)),
			logger.RequestID(req.Header.Get(HeaderRequestID)),
		}

		resp, err := next.Send(ctx, req)
		if err != nil {
			log.LogAttrs(ctx, slog.LevelError, "request failed",
				append(attrs, logger.Error(err), logger.Elapsed(start))...)
			return nil, err
		}

		log.LogAttrs(ctx, slog.LevelDebug, "request completed",
			append(attrs,
				logger.StatusCode(resp.StatusCode),
				logger.BytesIn(int64(len(resp.Body))),
				logger.Elapsed(start),
			)...)
		return resp, nil
	})
}

func urlPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Path
}

// HeaderRequestID carries the per-call correlation id.
const HeaderRequestID = "X-Request-ID"
