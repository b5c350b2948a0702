package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/sanari/health-api/pkg/httputil"
)

// RateLimiterConfig caps request throughput per client IP.
type RateLimiterConfig struct {
	RPS   float64
	Burst int
}

// RateLimiter keeps one token bucket per client IP. Idle buckets expire
// from the cache so the map does not grow without bound.
type RateLimiter struct {
	limiters *gocache.Cache
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		limiters: gocache.New(10*time.Minute, 15*time.Minute),
		rps:      rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
	}
}

// RateLimit rejects requests that exceed the per-IP budget with a 429.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		var limiter *rate.Limiter
		if cached, ok := rl.limiters.Get(ip); ok {
			limiter = cached.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(rl.rps, rl.burst)
			rl.limiters.Set(ip, limiter, gocache.DefaultExpiration)
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.Response{
				Success: false,
				Error:   &httputil.Error{Message: "rate limit exceeded"},
			})
			return
		}

		c.Next()
	}
}
