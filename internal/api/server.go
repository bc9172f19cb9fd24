// Package api exposes tenement sync and reporting over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"
)

// Services are the collaborators behind the HTTP handlers. Status may be
// nil when the status check route is disabled.
type Services struct {
	Syncer    Syncer
	Stats     StatsProvider
	Status    StatusChecker
	Tenements TenementLister
}

// ServerOption configures the API server
type ServerOption func(*serverConfig)

type serverConfig struct {
	middlewares        []func(http.Handler) http.Handler
	syncTimeout        time.Duration
	maxConcurrentSyncs int64
	statusCheck        bool
}

// WithMiddlewares adds middleware to the server
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithSyncTimeout bounds how long a single sync request may run.
func WithSyncTimeout(d time.Duration) ServerOption {
	return func(cfg *serverConfig) {
		cfg.syncTimeout = d
	}
}

// WithMaxConcurrentSyncs caps syncs in flight across all requests.
func WithMaxConcurrentSyncs(n int64) ServerOption {
	return func(cfg *serverConfig) {
		cfg.maxConcurrentSyncs = n
	}
}

// WithStatusCheck mounts GET /data-sources/status/check.
func WithStatusCheck(enabled bool) ServerOption {
	return func(cfg *serverConfig) {
		cfg.statusCheck = enabled
	}
}

type handler struct {
	services    Services
	syncTimeout time.Duration
	syncSlots   *semaphore.Weighted
	logger      *slog.Logger
}

// NewServer creates the HTTP router for the given services.
func NewServer(svc Services, logger *slog.Logger, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	h := &handler{
		services:    svc,
		syncTimeout: cfg.syncTimeout,
		logger:      logger.With("component", "api"),
	}
	if cfg.maxConcurrentSyncs > 0 {
		h.syncSlots = semaphore.NewWeighted(cfg.maxConcurrentSyncs)
	}

	r := chi.NewRouter()

	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	r.Get("/health", healthHandler)

	r.Route("/data-sources", func(r chi.Router) {
		r.Post("/sync/{jurisdiction}", h.syncJurisdiction)
		if cfg.statusCheck && svc.Status != nil {
			r.Get("/status/check", h.statusCheck)
		}
	})

	r.Get("/tenements", h.listTenements)
	r.Get("/tenements/stats", h.stats)

	return r
}

// DefaultMiddlewares is the standard chain used by cmd/server.
func DefaultMiddlewares(logger *slog.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		LoggingMiddleware(logger),
		middleware.Recoverer,
	}
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}
