// Package logger builds slog loggers and provides attribute helpers used by
// the apicheck client and its transport.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("apicheck"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Debug("request completed",
//		logger.Component("transport"),
//		logger.Method(http.MethodGet),
//		logger.StatusCode(200),
//		logger.Elapsed(start),
//	)
//
// WithDevelopment selects text output at debug level, WithProduction selects
// JSON at info level. Both attach service and env attributes.
//
// # Attributes
//
// Helpers return an empty slog.Attr for empty input, and slog drops empty
// attributes, so optional values can be passed without checks:
//
//	log.Warn("api error",
//		logger.Country(code),    // omitted when code == ""
//		logger.Error(err),       // omitted when err == nil
//		logger.RequestID(reqID),
//	)
//
// Nop returns a logger that discards everything. It is the client default.
package logger
