package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// slidingWindow trims, counts and conditionally records n hits atomically.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local count = tonumber(ARGV[4])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local current = redis.call('ZCARD', key)

if current + count <= limit then
	for i = 1, count do
		redis.call('ZADD', key, now, now .. ':' .. i .. ':' .. math.random())
	end
	redis.call('PEXPIRE', key, window + 1000)
	return {1, limit - current - count}
end

return {0, limit - current}
`)

// RedisLimiter shares windows between service replicas through sorted sets.
type RedisLimiter struct {
	client *redis.Client
	opts   *Options
}

// NewRedisLimiter connects and pings the server.
func NewRedisLimiter(opts *Options) (*RedisLimiter, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisLimiter{client: client, opts: opts}, nil
}

func redisKey(key string) string {
	return "algokit:ratelimit:" + key
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.AllowN(ctx, key, 1)
}

func (l *RedisLimiter) AllowN(ctx context.Context, key string, n int) (bool, error) {
	result, err := slidingWindow.Run(ctx, l.client, []string{redisKey(key)},
		l.opts.Requests, l.opts.Window.Milliseconds(), time.Now().UnixMilli(), n).Int64Slice()
	if err != nil {
		return false, fmt.Errorf("redis script error: %w", err)
	}
	if len(result) == 0 {
		return false, fmt.Errorf("unexpected empty result from redis script")
	}

	return result[0] == 1, nil
}

func (l *RedisLimiter) Info(ctx context.Context, key string) (*LimitInfo, error) {
	now := time.Now()
	start := now.Add(-l.opts.Window).UnixMilli()

	count, err := l.client.ZCount(ctx, redisKey(key), "("+strconv.FormatInt(start, 10), "+inf").Result()
	if err != nil {
		return nil, err
	}

	return &LimitInfo{
		Limit:     l.opts.Requests,
		Remaining: max(l.opts.Requests-int(count), 0),
		ResetAt:   now.Add(l.opts.Window),
	}, nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, redisKey(key)).Err()
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
