// Command algokit solves graph problems from the command line or serves
// the solver over HTTP.
//
//	algokit solve -algo dijkstra -source 0 -target 3 -weighted -directed < graph.txt
//	algokit serve -config config.yaml
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/algokit/internal/cache"
	"github.com/katalvlaran/algokit/internal/config"
	"github.com/katalvlaran/algokit/internal/input"
	"github.com/katalvlaran/algokit/internal/logger"
	"github.com/katalvlaran/algokit/internal/metrics"
	"github.com/katalvlaran/algokit/internal/ratelimit"
	"github.com/katalvlaran/algokit/internal/server"
	"github.com/katalvlaran/algokit/internal/solver"
	"github.com/katalvlaran/algokit/internal/telemetry"
)

const usage = `usage: algokit <command> [flags]

commands:
  solve   read "n m" and m edge lines "u v [w]" from stdin and print the result as JSON
  serve   run the HTTP API
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "algokit:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New(strings.TrimSpace(usage))
	}
	switch args[0] {
	case "solve":
		return runSolve(ctx, args[1:], stdin, stdout)
	case "serve":
		return runServe(ctx, args[1:])
	case "-h", "-help", "--help", "help":
		_, err := io.WriteString(stdout, usage)
		return err
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func loadConfig(path string) (*config.Config, error) {
	var opts []config.LoaderOption
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	return config.NewLoader(opts...).Load()
}

func runSolve(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	var (
		algo       = fs.String("algo", solver.AlgoDijkstra, "algorithm: "+strings.Join(solver.Algorithms(), ", "))
		source     = fs.Int("source", 0, "source vertex")
		target     = fs.Int("target", -1, "target vertex, -1 for none")
		root       = fs.Int("root", 0, "root vertex for prim")
		oneBased   = fs.Bool("one-based", false, "vertices in input and flags are numbered from 1")
		directed   = fs.Bool("directed", false, "edges are one-way")
		weighted   = fs.Bool("weighted", false, "edge lines carry a weight")
		multi      = fs.Bool("multi", false, "allow parallel edges")
		loops      = fs.Bool("loops", false, "allow self-loops")
		configPath = fs.String("config", "", "config file (default: $ALGOKIT_CONFIG or algokit.yaml search path)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.InitWithConfig(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: "stderr"})

	opts := input.ReadOptions{OneBased: *oneBased, Directed: *directed, Weighted: *weighted, Multi: *multi, Loops: *loops}
	n, edges, err := input.ReadEdgeList(input.NewTokenizer(stdin), opts)
	if err != nil {
		return fmt.Errorf("read graph: %w", err)
	}

	shift := 0
	if *oneBased {
		shift = 1
	}
	req := &solver.Request{
		Algorithm: *algo,
		Graph: solver.GraphSpec{
			Order: n, Directed: *directed, Weighted: *weighted,
			AllowMulti: *multi, AllowLoops: *loops,
			Edges: make([]solver.EdgeSpec, len(edges)),
		},
		Source: *source - shift,
		Root:   *root - shift,
	}
	for i, e := range edges {
		req.Graph.Edges[i] = solver.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}
	if *target >= 0 {
		t := *target - shift
		req.Target = &t
	}

	resp, err := solver.New(cfg.Solver).Solve(ctx, req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(resp)
}

func runServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default: $ALGOKIT_CONFIG or algokit.yaml search path)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Init("error")
		return fmt.Errorf("load config: %w", err)
	}
	logger.InitWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	logger.Log.Info("Starting algokit",
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.Init(ctx, telemetry.FromConfig(cfg))
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Log.Error("Tracer shutdown error", "error", err)
		}
	}()

	m := metrics.New(cfg.Metrics.Namespace)
	m.SetServiceInfo(cfg.App.Version, cfg.App.Environment)

	solverOpts := []solver.Option{solver.WithMetrics(m), solver.WithLogger(logger.Log)}
	var serverOpts []server.Option
	if cfg.Cache.Enabled {
		c, err := cache.New(cache.FromConfig(&cfg.Cache))
		if err != nil {
			return fmt.Errorf("init cache: %w", err)
		}
		defer c.Close()
		solverOpts = append(solverOpts, solver.WithCache(c, cfg.Cache.DefaultTTL))
		serverOpts = append(serverOpts, server.WithReadinessCheck(func(ctx context.Context) error {
			_, err := c.Stats(ctx)
			return err
		}))
		logger.Log.Info("Result cache enabled", "driver", cfg.Cache.Driver)
	}
	if cfg.RateLimit.Enabled {
		l, err := ratelimit.New(ratelimit.FromConfig(&cfg.RateLimit))
		if err != nil {
			return fmt.Errorf("init rate limiter: %w", err)
		}
		defer l.Close()
		serverOpts = append(serverOpts, server.WithLimiter(l))
	}
	serverOpts = append(serverOpts, server.WithMetrics(m))

	svc := solver.New(cfg.Solver, solverOpts...)

	return server.New(cfg, svc, serverOpts...).Run(ctx)
}
