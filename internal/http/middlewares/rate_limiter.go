package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
)

func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}

// RedisRateLimiter is the fixed-window limiter backed by redis, for
// running more than one instance behind a load balancer. A redis error
// lets the request through.
func RedisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.RealIP()

			count, err := client.Do(
				ctx,
				client.B().Incr().Key(key).Build(),
			).AsInt64()
			if err != nil {
				log.Printf("rate limiter: redis incr failed: %v", err)
				return next(c)
			}

			if count == 1 {
				if err := client.Do(
					ctx,
					client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Build(),
				).Error(); err != nil {
					log.Printf("rate limiter: redis expire failed: %v", err)
				}
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
