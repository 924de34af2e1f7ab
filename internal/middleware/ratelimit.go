package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rafaelfiap/go-vehicle-insurance/pkg/problem"
)

// RateLimiter is a per-client sliding-window limiter. State lives in memory,
// matching the rest of this service; a multi-instance deployment would need
// a shared store instead.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
}

// Start runs periodic cleanup of idle clients until ctx is cancelled.
func (rl *RateLimiter) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.sweep(time.Now())
			}
		}
	}()
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.window)
	for ip, times := range rl.requests {
		kept := times[:0]
		for _, t := range times {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			delete(rl.requests, ip)
		} else {
			rl.requests[ip] = kept
		}
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.window)
	var kept []time.Time
	for _, t := range rl.requests[ip] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= rl.limit {
		rl.requests[ip] = kept
		return false
	}
	rl.requests[ip] = append(kept, now)
	return true
}

// Middleware enforces the limit keyed by client IP. Mount after chi's RealIP
// so RemoteAddr reflects the trusted forwarded address.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		if !rl.allow(ip, time.Now()) {
			w.Header().Set("Retry-After", "60")
			problem.WriteFor(w, r, http.StatusTooManyRequests,
				"Too Many Requests", "Rate limit exceeded, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}
