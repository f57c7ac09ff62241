// Package api - Thin HTTP layer over the estimation engine
// The API is responsible for input ingestion, engine orchestration and
// output serialization. It never computes capacity or cost.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"capcost/core/engine"
	"capcost/internal/logging"
	"capcost/internal/metrics"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// requestTimeout bounds a whole request, classifier retries included
const requestTimeout = 60 * time.Second

// Server is the API server
type Server struct {
	router  chi.Router
	handler *Handler
	log     *zap.Logger
	metrics *metrics.Metrics
	version string
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithMetrics sets the collectors served on /metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithVersion sets the version reported by /api/health
func WithVersion(version string) Option {
	return func(s *Server) { s.version = version }
}

// NewServer creates a server over an engine
func NewServer(eng *engine.Engine, opts ...Option) *Server {
	s := &Server{
		log:     logging.Named("api"),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = NewHandler(eng, s.log, s.version)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Post("/estimate", s.handler.HandleEstimate)
		r.Post("/estimate/direct", s.handler.HandleEstimateDirect)
		r.Get("/categories", s.handler.HandleCategories)
		r.Get("/features", s.handler.HandleFeatures)
		r.Get("/benchmarks", s.handler.HandleBenchmarks)
		r.Get("/health", s.handler.HandleHealth)
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestIDMiddleware keeps an incoming X-Request-ID or assigns a new
// uuid, and echoes it on the response
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// logRequests writes one zap line per request
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Info("request",
				zap.String("request_id", requestID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

// observe records request metrics by route pattern
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.ObserveRequest(r.Method, route, status, time.Since(start))
	})
}
