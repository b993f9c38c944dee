package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps a sliding window of admitted timestamps per key.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	opts    *Options
	stopCh  chan struct{}
	closed  bool
	now     func() time.Time
}

// NewMemoryLimiter starts the limiter and its cleanup goroutine.
func NewMemoryLimiter(opts *Options) *MemoryLimiter {
	if opts == nil {
		opts = DefaultOptions()
	}
	interval := opts.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	l := &MemoryLimiter{
		windows: make(map[string][]time.Time),
		opts:    opts,
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}
	go l.cleanupLoop(interval)

	return l
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.AllowN(ctx, key, 1)
}

func (l *MemoryLimiter) AllowN(_ context.Context, key string, n int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false, ErrLimiterClosed
	}

	now := l.now()
	live := l.prune(key, now)
	if len(live)+n > l.opts.Requests {
		return false, nil
	}
	for i := 0; i < n; i++ {
		live = append(live, now)
	}
	l.windows[key] = live

	return true, nil
}

func (l *MemoryLimiter) Info(_ context.Context, key string) (*LimitInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrLimiterClosed
	}

	now := l.now()
	live := l.prune(key, now)
	info := &LimitInfo{
		Limit:     l.opts.Requests,
		Remaining: max(l.opts.Requests-len(live), 0),
		ResetAt:   now.Add(l.opts.Window),
	}
	if len(live) > 0 {
		info.ResetAt = live[0].Add(l.opts.Window)
	}

	return info, nil
}

func (l *MemoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.windows, key)
	return nil
}

func (l *MemoryLimiter) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	close(l.stopCh)
	l.windows = nil

	return nil
}

// prune drops timestamps older than the window. Caller holds mu.
func (l *MemoryLimiter) prune(key string, now time.Time) []time.Time {
	start := now.Add(-l.opts.Window)
	ts := l.windows[key]
	i := 0
	for i < len(ts) && !ts[i].After(start) {
		i++
	}
	ts = ts[i:]
	if len(ts) == 0 {
		delete(l.windows, key)
		return nil
	}
	l.windows[key] = ts

	return ts
}

func (l *MemoryLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key := range l.windows {
				l.prune(key, now)
			}
			l.mu.Unlock()
		}
	}
}
