// middleware/rate_limiter.go
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yurayurastudio/studio_backend/models"
	"golang.org/x/time/rate"
)

type endpointLimit struct {
	limit rate.Limit
	burst int
}

// RateLimiter throttles requests per client IP, with stricter limits on
// selected routes. Clients exceeding a limit are blocked for blockDuration.
type RateLimiter struct {
	ips            map[string]*rate.Limiter
	blockedIPs     map[string]time.Time
	mu             sync.Mutex
	defaultLimit   endpointLimit
	blockDuration  time.Duration
	endpointLimits map[string]endpointLimit
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		ips:           make(map[string]*rate.Limiter),
		blockedIPs:    make(map[string]time.Time),
		defaultLimit:  endpointLimit{limit: rate.Every(100 * time.Millisecond), burst: 20},
		blockDuration: 5 * time.Minute,
		endpointLimits: map[string]endpointLimit{
			// Brute force protection
			"/api/auth/login": {limit: rate.Every(2 * time.Second), burst: 5},
		},
	}
}

// Cleanup drops expired blocks every interval until ctx is done
func (r *RateLimiter) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.mu.Lock()
			for key, blockUntil := range r.blockedIPs {
				if now.After(blockUntil) {
					delete(r.blockedIPs, key)
					delete(r.ips, key)
				}
			}
			r.mu.Unlock()
		}
	}
}

func (r *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			limit, ok := r.endpointLimits[path]
			if !ok {
				limit = r.defaultLimit
				path = ""
			}
			// Each strict route gets its own bucket per IP
			key := c.RealIP() + "|" + path

			r.mu.Lock()
			if blockUntil, blocked := r.blockedIPs[key]; blocked {
				if time.Now().Before(blockUntil) {
					r.mu.Unlock()
					return tooManyRequests(c, blockUntil)
				}
				delete(r.blockedIPs, key)
				delete(r.ips, key)
			}

			limiter, exists := r.ips[key]
			if !exists {
				limiter = rate.NewLimiter(limit.limit, limit.burst)
				r.ips[key] = limiter
			}

			if !limiter.Allow() {
				blockUntil := time.Now().Add(r.blockDuration)
				r.blockedIPs[key] = blockUntil
				r.mu.Unlock()
				return tooManyRequests(c, blockUntil)
			}
			r.mu.Unlock()

			return next(c)
		}
	}
}

func tooManyRequests(c echo.Context, retryAfter time.Time) error {
	return c.JSON(http.StatusTooManyRequests, models.Response{
		Status:  http.StatusTooManyRequests,
		Message: "Too many requests",
		Data:    map[string]string{"retryAfter": retryAfter.Format(time.RFC3339)},
	})
}
