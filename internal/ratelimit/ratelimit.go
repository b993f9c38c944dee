// Package ratelimit throttles solve requests per client with a sliding
// window, in memory or in Redis.
package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/algokit/internal/config"
)

var (
	ErrLimiterClosed = errors.New("limiter is closed")
)

// Limiter admits or rejects requests keyed by client identity.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	AllowN(ctx context.Context, key string, n int) (bool, error)
	Info(ctx context.Context, key string) (*LimitInfo, error)
	Reset(ctx context.Context, key string) error
	Close() error
}

// LimitInfo reports the state of one key's window.
type LimitInfo struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Options configures a limiter.
type Options struct {
	Requests        int
	Window          time.Duration
	Backend         string // memory, redis
	CleanupInterval time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

func DefaultOptions() *Options {
	return &Options{
		Requests:        100,
		Window:          time.Minute,
		Backend:         "memory",
		CleanupInterval: 5 * time.Minute,
	}
}

// FromConfig converts the rate_limit configuration section.
func FromConfig(cfg *config.RateLimitConfig) *Options {
	opts := DefaultOptions()
	if cfg.Requests > 0 {
		opts.Requests = cfg.Requests
	}
	if cfg.Window > 0 {
		opts.Window = cfg.Window
	}
	if cfg.Backend != "" {
		opts.Backend = cfg.Backend
	}
	opts.RedisAddr = cfg.RedisAddr

	return opts
}

// New picks the backend by name; anything other than "redis" is memory.
func New(opts *Options) (Limiter, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Backend == "redis" {
		return NewRedisLimiter(opts)
	}
	return NewMemoryLimiter(opts), nil
}
