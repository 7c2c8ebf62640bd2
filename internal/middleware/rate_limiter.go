package middleware

import (
	"context"
	"sync"
	"time"

	"mmex-search/internal/config"
	"mmex-search/internal/errors"
	"mmex-search/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 3 * time.Minute
	cleanupInterval    = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu                sync.Mutex
	visitors          map[string]*visitor
	requestsPerSecond int
	burst             int
}

// NewRateLimiter creates a per-IP limiter from the rate limit settings
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		visitors:          make(map[string]*visitor),
		requestsPerSecond: cfg.RequestsPerSecond,
		burst:             cfg.Burst,
	}
	if rl.requestsPerSecond <= 0 {
		rl.requestsPerSecond = 20
	}
	if rl.burst <= 0 {
		rl.burst = rl.requestsPerSecond * 2
	}
	return rl
}

// Middleware rejects requests over the limit with SYSTEM_006
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.limiter(c.RealIP()).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// Run drops idle visitors until ctx is cancelled
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.cleanup(now)
		}
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(rl.requestsPerSecond), rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTimeout {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) visitorCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}
