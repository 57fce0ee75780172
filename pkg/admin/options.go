package admin

import (
	"log/slog"
	"time"
)

// Option configures an API.
type Option func(*API)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithMaxUploadBytes caps request bodies. Zero or negative keeps the default.
func WithMaxUploadBytes(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxUploadBytes = n
		}
	}
}

// WithTimeouts sets the HTTP server read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(a *API) {
		if read > 0 {
			a.readTimeout = read
		}
		if write > 0 {
			a.writeTimeout = write
		}
	}
}

// WithVersion sets the version reported by /health.
func WithVersion(v string) Option {
	return func(a *API) {
		a.version = v
	}
}
