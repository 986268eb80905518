package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=throttle.go -destination=../mocks/throttle_mocks.go -package=mocks

// Throttle grants a key at most once per ttl
type Throttle interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// NewThrottle returns a Redis throttle, or an in-memory one when client is nil
func NewThrottle(client *redis.Client) Throttle {
	if client == nil {
		return NewMemoryThrottle()
	}
	return &RedisThrottle{client: client}
}

// RedisThrottle uses SET NX with expiry
type RedisThrottle struct {
	client *redis.Client
}

// Acquire reports whether key was free and marks it taken for ttl
func (t *RedisThrottle) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return t.client.SetNX(ctx, "throttle:"+key, 1, ttl).Result()
}

// MemoryThrottle keeps expiry times in process memory
type MemoryThrottle struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryThrottle creates an in-memory throttle
func NewMemoryThrottle() *MemoryThrottle {
	return &MemoryThrottle{expires: make(map[string]time.Time), now: time.Now}
}

// Acquire reports whether key was free and marks it taken for ttl
func (t *MemoryThrottle) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if until, ok := t.expires[key]; ok && now.Before(until) {
		return false, nil
	}
	t.expires[key] = now.Add(ttl)

	// drop stale entries so the map does not grow without bound
	if len(t.expires) > 10000 {
		for k, until := range t.expires {
			if !now.Before(until) {
				delete(t.expires, k)
			}
		}
	}
	return true, nil
}
