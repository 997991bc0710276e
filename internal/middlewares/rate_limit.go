package middlewares

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/richardm/flight-search-api/internal/logger"
)

const rateLimitKeyPrefix = "flight-search:ratelimit:"

// RateLimiter decides whether a request identified by key may proceed.
type RateLimiter interface {
	Allow(r *http.Request, key string) bool
}

// RedisRateLimiter is a fixed-window request counter backed by Redis.
// When Redis is unreachable it fails open: search availability wins
// over the request cap.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisRateLimiter creates a limiter allowing limit requests per window
// per key.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow increments the counter for key and reports whether the request
// is within the limit.
func (rl *RedisRateLimiter) Allow(r *http.Request, key string) bool {
	if rl.limit <= 0 {
		return true
	}

	ctx := r.Context()
	redisKey := rateLimitKeyPrefix + key

	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		logger.Log.Errorw("rate limiter redis error", "op", "incr", "error", err)
		return true
	}
	if counter == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			logger.Log.Errorw("rate limiter redis error", "op", "expire", "error", err)
		}
	}

	return counter <= int64(rl.limit)
}

// RateLimitMiddleware caps requests per client IP using the given limiter.
// Rejected requests get 429 with the original backend's message.
func RateLimitMiddleware(limiter RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r, clientIP(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests, try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
