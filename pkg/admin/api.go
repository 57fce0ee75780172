package admin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mocktool/mocktool/pkg/logging"
)

// BasePath prefixes every proto route.
const BasePath = "/api/v1/mocktool/proto"

// Defaults applied by NewAPI.
const (
	DefaultMaxUploadBytes int64 = 4 << 20
	DefaultReadTimeout          = 30 * time.Second
	DefaultWriteTimeout         = 30 * time.Second
	shutdownTimeout             = 5 * time.Second
)

// API serves the proto template endpoints.
type API struct {
	port           int
	log            *slog.Logger
	maxUploadBytes int64
	readTimeout    time.Duration
	writeTimeout   time.Duration
	version        string
	startTime      time.Time
	handler        http.Handler
}

// NewAPI creates an API that will listen on port.
func NewAPI(port int, opts ...Option) *API {
	a := &API{
		port:           port,
		log:            logging.Nop(),
		maxUploadBytes: DefaultMaxUploadBytes,
		readTimeout:    DefaultReadTimeout,
		writeTimeout:   DefaultWriteTimeout,
		startTime:      time.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.handler = a.buildHandler()
	return a
}

func (a *API) buildHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.handleHealth)
	mux.HandleFunc("GET "+BasePath+"/health", a.handleHealth)
	mux.HandleFunc("POST "+BasePath+"/templates", a.handleTemplates)
	mux.HandleFunc("POST "+BasePath+"/check", a.handleCheck)
	mux.HandleFunc("POST "+BasePath+"/validate", a.handleValidate)
	mux.HandleFunc("POST "+BasePath+"/selection", a.handleSelection)

	var h http.Handler = mux
	h = bodyLimitMiddleware(a.maxUploadBytes, h)
	h = securityHeadersMiddleware(h)
	h = loggingMiddleware(a.log, h)
	h = requestIDMiddleware(h)
	return h
}

// Handler returns the fully wrapped HTTP handler.
func (a *API) Handler() http.Handler {
	return a.handler
}

// Uptime returns the API uptime in seconds.
func (a *API) Uptime() int {
	return int(time.Since(a.startTime).Seconds())
}

// ListenAndServe listens on the configured port and serves until ctx is
// cancelled, then shuts down gracefully.
func (a *API) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(a.port))
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled. In-flight requests get a short
// grace period before the listener is torn down.
func (a *API) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.handler,
		ReadTimeout:       a.readTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      a.writeTimeout,
		ErrorLog:          slog.NewLogLogger(a.log.Handler(), slog.LevelWarn),
	}

	a.startTime = time.Now()
	a.log.Info("starting admin API", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("stopping admin API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
