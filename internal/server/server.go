// Package server exposes the solver over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/katalvlaran/algokit/internal/config"
	"github.com/katalvlaran/algokit/internal/logger"
	"github.com/katalvlaran/algokit/internal/metrics"
	"github.com/katalvlaran/algokit/internal/ratelimit"
	"github.com/katalvlaran/algokit/internal/solver"
)

// Server wires routes and middleware around a solver.Service.
type Server struct {
	cfg     *config.Config
	solver  *solver.Service
	metrics *metrics.Metrics
	limiter ratelimit.Limiter
	ready   func(context.Context) error
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics enables request metrics and the /metrics route.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLimiter throttles the solve routes per client.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(s *Server) { s.limiter = l }
}

// WithReadinessCheck makes /readyz report fn's error as 503.
func WithReadinessCheck(fn func(context.Context) error) Option {
	return func(s *Server) { s.ready = fn }
}

func New(cfg *config.Config, svc *solver.Service, opts ...Option) *Server {
	s := &Server{cfg: cfg, solver: svc}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the fully wrapped route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	solve := func(h http.HandlerFunc) http.Handler {
		if s.cfg.HTTP.MaxBodyBytes <= 0 {
			return s.rateLimit(h)
		}
		return s.rateLimit(http.MaxBytesHandler(h, s.cfg.HTTP.MaxBodyBytes))
	}
	s.route(mux, "POST /v1/solve", solve(s.handleSolve))
	s.route(mux, "POST /v1/solve/batch", solve(s.handleSolveBatch))
	s.route(mux, "GET /v1/algorithms", http.HandlerFunc(s.handleAlgorithms))
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	if s.metrics != nil && s.cfg.Metrics.Enabled {
		path := s.cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, s.metrics.Handler())
	}

	return chain(mux, requestID, recoverer, tracing, accessLog)
}

func (s *Server) route(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, s.instrument(pattern, h))
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// cfg.HTTP.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.HTTP.Address())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.HTTP.Address(), err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadTimeout:  s.cfg.HTTP.ReadTimeout,
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("HTTP server listening", "addr", ln.Addr().String())
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

	logger.Log.Info("Shutting down HTTP server")
	timeout := s.cfg.HTTP.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Log.Info("HTTP server stopped")

	return nil
}
