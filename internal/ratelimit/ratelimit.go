// Package ratelimit throttles public endpoints per user or client IP.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"papermark-backend/internal/logger"
	"papermark-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request for key may pass
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
	Name() string
}

// New returns a Redis fixed-window limiter, or an in-memory token bucket when client is nil
func New(client *redis.Client, rps float64, burst int, window time.Duration) Limiter {
	if client == nil {
		return NewMemoryLimiter(rps, burst)
	}
	return NewRedisLimiter(client, rps, burst, window)
}

// RedisLimiter is a coarse fixed-window limiter shared by every instance of the service.
// Each window allows floor(rps*windowSeconds)+burst requests per key.
type RedisLimiter struct {
	client        *redis.Client
	windowSeconds int
	allowed       int
	now           func() time.Time
}

// NewRedisLimiter creates a Redis backed limiter
func NewRedisLimiter(client *redis.Client, rps float64, burst int, window time.Duration) *RedisLimiter {
	windowSeconds := int(window.Seconds())
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	return &RedisLimiter{
		client:        client,
		windowSeconds: windowSeconds,
		allowed:       int(rps*float64(windowSeconds)) + burst,
		now:           time.Now,
	}
}

// Name labels the limiter in metrics
func (l *RedisLimiter) Name() string {
	return "redis"
}

// Allow increments the counter of the current window
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	bucket := l.now().Unix() / int64(l.windowSeconds)
	redisKey := fmt.Sprintf("rl:%s:%d", key, bucket)

	cnt, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit check failed: %w", err)
	}
	if cnt == 1 {
		_ = l.client.Expire(ctx, redisKey, time.Duration(l.windowSeconds+1)*time.Second).Err()
	}
	if int(cnt) > l.allowed {
		return false, time.Duration(l.windowSeconds) * time.Second, nil
	}
	return true, 0, nil
}

// MemoryLimiter keeps one token bucket per key in process memory
type MemoryLimiter struct {
	rps      float64
	burst    int
	limiters sync.Map // map[string]*rate.Limiter
}

// NewMemoryLimiter creates an in-memory limiter
func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{rps: rps, burst: burst}
}

// Name labels the limiter in metrics
func (l *MemoryLimiter) Name() string {
	return "memory"
}

// Allow takes one token from the bucket of key
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	v, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(rate.Limit(l.rps), l.burst))
	if !v.(*rate.Limiter).Allow() {
		return false, time.Second, nil
	}
	return true, 0, nil
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
// Requests are keyed by the authenticated user id when present, otherwise by client IP.
// scope separates the budgets of different endpoint groups.
func Middleware(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + requestKey(c)

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.FromGinContext(c).WithError(err).Error("Rate limit check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			return
		}
		if !allowed {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			metrics.RateLimitRejected.WithLabelValues(limiter.Name()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded", "code": "RATE_LIMITED"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues(limiter.Name()).Inc()
		c.Next()
	}
}

func requestKey(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return "sub:" + userID
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}
