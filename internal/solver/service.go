package solver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/internal/apperror"
	"github.com/katalvlaran/algokit/internal/cache"
	"github.com/katalvlaran/algokit/internal/config"
	"github.com/katalvlaran/algokit/internal/logger"
	"github.com/katalvlaran/algokit/internal/metrics"
	"github.com/katalvlaran/algokit/internal/telemetry"
)

// Service executes solve requests. The zero cache and metrics are allowed:
// without them results are not cached and nothing is recorded.
type Service struct {
	cfg      config.SolverConfig
	cache    cache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables result caching with the given TTL (0 = backend default).
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a Service limited by cfg.
func New(cfg config.SolverConfig, opts ...Option) *Service {
	s := &Service{cfg: cfg, log: logger.Log}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve validates req, consults the cache and runs the requested algorithm
// under the configured timeout. Errors are always *apperror.Error.
func (s *Service) Solve(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	if req == nil {
		return nil, apperror.New(apperror.CodeNilInput, "request is nil")
	}

	ctx, span := telemetry.StartSpan(ctx, "solver.Solve",
		telemetry.WithAttributes(
			attribute.String("algorithm", req.Algorithm),
			attribute.Int("graph.order", req.Graph.Order),
			attribute.Int("graph.edges", len(req.Graph.Edges)),
		))
	defer span.End()

	resp, err := s.solve(ctx, req)
	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordSolveOperation(metricLabel(req.Algorithm), err == nil, elapsed)
	}

	log := s.logger(ctx)
	if err != nil {
		appErr := apperror.FromAlgorithm(err)
		telemetry.SetError(ctx, appErr)
		log.Warn("solve failed",
			"algorithm", req.Algorithm,
			"code", appErr.Code,
			"error", appErr.Message,
			"duration", elapsed,
		)
		return nil, appErr
	}

	resp.ElapsedMS = float64(elapsed.Microseconds()) / 1000
	telemetry.SetAttributes(ctx, attribute.Bool("cached", resp.Cached))
	log.Debug("solve completed",
		"algorithm", req.Algorithm,
		"vertices", req.Graph.Order,
		"edges", len(req.Graph.Edges),
		"cached", resp.Cached,
		"duration", elapsed,
	)

	return resp, nil
}

// metricLabel keeps arbitrary client strings out of label values.
func metricLabel(algorithm string) string {
	if _, ok := registry[algorithm]; ok {
		return algorithm
	}
	return "unknown"
}

// logger prefers the request-scoped logger placed in ctx by the server.
func (s *Service) logger(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != logger.Log {
		return l
	}
	return s.log
}

func (s *Service) solve(ctx context.Context, req *Request) (*Response, error) {
	alg, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordGraphSize(req.Algorithm, req.Graph.Order, len(req.Graph.Edges))
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	key := cacheKey(req)
	if resp, ok := s.lookup(ctx, req.Algorithm, key); ok {
		return resp, nil
	}

	g, err := buildGraph(&req.Graph, alg.weighted)
	if err != nil {
		return nil, err
	}
	resp := &Response{Algorithm: req.Algorithm}
	if err := alg.run(ctx, g, req, resp); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return nil, err
	}
	s.store(ctx, key, resp)

	return resp, nil
}

func (s *Service) validate(req *Request) (algorithm, error) {
	alg, ok := registry[req.Algorithm]
	if !ok {
		return algorithm{}, apperror.NewWithField(apperror.CodeInvalidAlgorithm,
			fmt.Sprintf("unknown algorithm %q", req.Algorithm), "algorithm").
			WithDetails("supported", Algorithms())
	}
	g := &req.Graph
	if g.Order < 0 {
		return alg, apperror.NewWithField(apperror.CodeInvalidGraph, "order must be non-negative", "graph.order")
	}
	if s.cfg.MaxVertices > 0 && g.Order > s.cfg.MaxVertices {
		return alg, apperror.NewWithField(apperror.CodeGraphTooLarge,
			fmt.Sprintf("graph has %d vertices, limit is %d", g.Order, s.cfg.MaxVertices), "graph.order")
	}
	if s.cfg.MaxEdges > 0 && len(g.Edges) > s.cfg.MaxEdges {
		return alg, apperror.NewWithField(apperror.CodeGraphTooLarge,
			fmt.Sprintf("graph has %d edges, limit is %d", len(g.Edges), s.cfg.MaxEdges), "graph.edges")
	}
	if alg.dense && g.Order > maxMatrixOrder {
		return alg, apperror.NewWithField(apperror.CodeGraphTooLarge,
			fmt.Sprintf("%s is limited to %d vertices", req.Algorithm, maxMatrixOrder), "graph.order")
	}

	return alg, nil
}

// buildGraph materialises spec. With unit set, an unweighted spec becomes a
// weighted graph whose edges all weigh 1.
func buildGraph(spec *GraphSpec, unit bool) (*core.Graph, error) {
	var opts []core.GraphOption
	if spec.Directed {
		opts = append(opts, core.WithDirected())
	}
	weighted := spec.Weighted || unit
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	if spec.AllowMulti {
		opts = append(opts, core.WithMultiEdges())
	}
	if spec.AllowLoops {
		opts = append(opts, core.WithLoops())
	}

	g := core.NewGraph(spec.Order, opts...)
	for i, e := range spec.Edges {
		var w int64
		switch {
		case spec.Weighted:
			w = e.Weight
		case unit:
			w = 1
		}
		if _, err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

func cacheKey(req *Request) string {
	edges := make([]cache.EdgeKey, len(req.Graph.Edges))
	for i, e := range req.Graph.Edges {
		edges[i] = cache.EdgeKey{From: e.From, To: e.To, Weight: e.Weight}
		if !req.Graph.Weighted {
			edges[i].Weight = 0
		}
	}
	graph := cache.GraphHash(req.Graph.Order, req.Graph.Directed, edges)

	target := -1
	if req.Target != nil {
		target = *req.Target
	}
	opts := fmt.Sprintf("w%t-m%t-l%t-s%d-t%d-r%d",
		req.Graph.Weighted, req.Graph.AllowMulti, req.Graph.AllowLoops, req.Source, target, req.Root)

	return cache.BuildSolveKey(req.Algorithm, graph, opts)
}

func (s *Service) lookup(ctx context.Context, algorithm, key string) (*Response, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key)
	hit := err == nil
	if s.metrics != nil {
		s.metrics.RecordCache(algorithm, hit)
	}
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			s.log.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		s.log.Warn("discarding corrupt cache entry", "key", key, "error", err)
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	resp.Cached = true
	telemetry.AddEvent(ctx, "cache.hit")

	return &resp, true
}

func (s *Service) store(ctx context.Context, key string, resp *Response) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.log.Warn("cache set failed", "key", key, "error", err)
	}
}

// SolveBatch solves reqs with at most cfg.BatchWorkers running at once.
// Results keep the order of reqs; a failing request does not stop the
// others. The returned error is non-nil only for an oversized batch or a
// cancelled ctx.
func (s *Service) SolveBatch(ctx context.Context, reqs []*Request) ([]BatchResult, error) {
	if s.cfg.MaxBatchSize > 0 && len(reqs) > s.cfg.MaxBatchSize {
		return nil, apperror.NewWithField(apperror.CodeInvalidArgument,
			fmt.Sprintf("batch has %d requests, limit is %d", len(reqs), s.cfg.MaxBatchSize), "requests")
	}

	results := make([]BatchResult, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	workers := s.cfg.BatchWorkers
	if workers <= 0 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i].Index = i
			resp, err := s.Solve(gctx, req)
			if err != nil {
				results[i].Error = apperror.FromAlgorithm(err)
				return nil
			}
			results[i].Response = resp
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, apperror.FromAlgorithm(err)
	}

	return results, nil
}
