package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// InMemoryRateLimiter allows at most limit hits per key within window.
type InMemoryRateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	return &InMemoryRateLimiter{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (r *InMemoryRateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	valid := r.prune(r.hits[key], now.Add(-r.window))
	if len(valid) >= r.limit {
		r.hits[key] = valid
		return false
	}
	r.hits[key] = append(valid, now)
	return true
}

// Sweep drops keys whose hits have all expired.
func (r *InMemoryRateLimiter) Sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.window)
	for k, times := range r.hits {
		if valid := r.prune(times, cutoff); len(valid) == 0 {
			delete(r.hits, k)
		} else {
			r.hits[k] = valid
		}
	}
}

func (r *InMemoryRateLimiter) prune(times []time.Time, cutoff time.Time) []time.Time {
	var valid []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	return valid
}

// RateLimit limits by client IP.
func RateLimit(limiter *InMemoryRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		limiter.maybeSweep()
		c.Next()
	}
}

func (r *InMemoryRateLimiter) maybeSweep() {
	r.mu.Lock()
	n := len(r.hits)
	r.mu.Unlock()
	if n > 1024 {
		r.Sweep()
	}
}
