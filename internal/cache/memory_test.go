package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache(&Options{DefaultTTL: time.Minute, MaxEntries: 100})
	defer cache.Close()

	ctx := context.Background()
	value := []byte("test-value")
	if err := cache.Set(ctx, "k", value, 0); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	value[0] = 'X'

	got, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if string(got) != "test-value" {
		t.Errorf("expected stored copy, got %s", got)
	}
}

func TestMemoryCache_GetNotFound(t *testing.T) {
	cache := NewMemoryCache(nil)
	defer cache.Close()

	if _, err := cache.Get(context.Background(), "nonexistent"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(&Options{DefaultTTL: time.Minute, CleanupInterval: 10 * time.Millisecond})
	defer cache.Close()

	ctx := context.Background()
	_ = cache.Set(ctx, "short", []byte("v"), 20*time.Millisecond)
	if ok, _ := cache.Exists(ctx, "short"); !ok {
		t.Fatal("key should exist before expiry")
	}
	time.Sleep(60 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected expiry, got %v", err)
	}
	if ok, _ := cache.Exists(ctx, "short"); ok {
		t.Error("expired key reported as existing")
	}
}

func TestMemoryCache_DeleteClear(t *testing.T) {
	cache := NewMemoryCache(nil)
	defer cache.Close()

	ctx := context.Background()
	_ = cache.Set(ctx, "a", []byte("1"), 0)
	_ = cache.Set(ctx, "b", []byte("2"), 0)

	if err := cache.Delete(ctx, "a"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if ok, _ := cache.Exists(ctx, "a"); ok {
		t.Error("deleted key still exists")
	}
	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}
	if ok, _ := cache.Exists(ctx, "b"); ok {
		t.Error("cleared key still exists")
	}
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewMemoryCache(&Options{DefaultTTL: time.Minute, MaxEntries: 2})
	defer cache.Close()

	ctx := context.Background()
	_ = cache.Set(ctx, "a", []byte("1"), 0)
	time.Sleep(2 * time.Millisecond)
	_ = cache.Set(ctx, "b", []byte("2"), 0)
	time.Sleep(2 * time.Millisecond)
	_, _ = cache.Get(ctx, "a") // a is now fresher than b
	time.Sleep(2 * time.Millisecond)
	_ = cache.Set(ctx, "c", []byte("3"), 0)

	if ok, _ := cache.Exists(ctx, "b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if ok, _ := cache.Exists(ctx, k); !ok {
			t.Errorf("%s should remain", k)
		}
	}

	// overwriting an existing key must not evict
	_ = cache.Set(ctx, "a", []byte("1b"), 0)
	if ok, _ := cache.Exists(ctx, "c"); !ok {
		t.Error("overwrite evicted c")
	}
}

func TestMemoryCache_Stats(t *testing.T) {
	cache := NewMemoryCache(nil)
	defer cache.Close()

	ctx := context.Background()
	_ = cache.Set(ctx, "k", []byte("value"), 0)
	_, _ = cache.Get(ctx, "k")
	_, _ = cache.Get(ctx, "missing")

	stats, err := cache.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Hits != 1 || stats.Misses != 1 || stats.TotalKeys != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("hit rate = %f", stats.HitRate)
	}
	if stats.Backend != BackendMemory {
		t.Errorf("backend = %s", stats.Backend)
	}
}

func TestMemoryCache_Closed(t *testing.T) {
	cache := NewMemoryCache(nil)
	if err := cache.Close(); err != nil {
		t.Fatal(err)
	}
	if err := cache.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	ctx := context.Background()
	if err := cache.Set(ctx, "k", nil, 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set after close: %v", err)
	}
	if _, err := cache.Get(ctx, "k"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get after close: %v", err)
	}
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := NewMemoryCache(&Options{DefaultTTL: time.Minute, MaxEntries: 50})
	defer cache.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*200+i)%75)
				_ = cache.Set(ctx, key, []byte{byte(i)}, 0)
				_, _ = cache.Get(ctx, key)
			}
		}(g)
	}
	wg.Wait()

	stats, _ := cache.Stats(ctx)
	if stats.TotalKeys > 50 {
		t.Errorf("cache grew past MaxEntries: %d", stats.TotalKeys)
	}
}

func TestNew_Backends(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("default backend should be memory, got %T", c)
	}

	c2, err := New(&Options{Backend: "unknown"})
	if err != nil {
		t.Fatal(err)
	}
	defer c2.Close()
	if _, ok := c2.(*MemoryCache); !ok {
		t.Errorf("unknown backend should fall back to memory, got %T", c2)
	}
}
