package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type config interface {
	ListenAddr() string
}

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Server exposes metrics and health endpoints for operators.
type Server struct {
	srv    *http.Server
	checks map[string]HealthCheck
}

func New(config config, checks map[string]HealthCheck) *Server {
	s := &Server{checks: checks}
	s.srv = &http.Server{
		Addr:              config.ListenAddr(),
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/healthz", s.handleHealth)
	return r
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Serve() error {
	logger.Info("ops server listening", zap.String("addr", s.srv.Addr))
	err := s.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve ops")
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	logger.Info("ops server stopped")
	return errors.Wrap(err, "shutdown ops")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	for name, check := range s.checks {
		if err := check(r.Context()); err != nil {
			logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			status = http.StatusServiceUnavailable
		}
	}

	w.WriteHeader(status)
	if status == http.StatusOK {
		_, _ = w.Write([]byte("ok"))
		return
	}
	_, _ = w.Write([]byte("unavailable"))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("ops request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)))
	})
}
