package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func skipIfNoRedis(t *testing.T) {
	t.Helper()
	if os.Getenv("REDIS_TEST_ADDR") == "" {
		t.Skip("REDIS_TEST_ADDR not set, skipping Redis tests")
	}
}

func newTestRedis(t *testing.T) *RedisCache {
	t.Helper()
	skipIfNoRedis(t)

	cache, err := NewRedisCache(&Options{
		Backend:       BackendRedis,
		RedisAddr:     os.Getenv("REDIS_TEST_ADDR"),
		RedisPassword: os.Getenv("REDIS_TEST_PASSWORD"),
		DefaultTTL:    time.Minute,
		KeyPrefix:     "algokit-test:",
	})
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	t.Cleanup(func() {
		_ = cache.Clear(context.Background())
		_ = cache.Close()
	})

	return cache
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	cache := newTestRedis(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	val, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(val) != "v" {
		t.Errorf("Get() = %s, want v", val)
	}
	if ok, _ := cache.Exists(ctx, "k"); !ok {
		t.Error("Exists() = false")
	}

	_ = cache.Delete(ctx, "k")
	if _, err := cache.Get(ctx, "k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after delete = %v", err)
	}
}

func TestRedisCache_ClearAndStats(t *testing.T) {
	cache := newTestRedis(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		_ = cache.Set(ctx, k, []byte(k), 0)
	}
	stats, err := cache.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalKeys != 3 {
		t.Errorf("TotalKeys = %d, want 3", stats.TotalKeys)
	}

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if ok, _ := cache.Exists(ctx, "a"); ok {
		t.Error("key survived Clear")
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	_, err := NewRedisCache(&Options{RedisAddr: "127.0.0.1:1", DefaultTTL: time.Minute})
	if err == nil {
		t.Fatal("expected ping error for unreachable server")
	}
}
