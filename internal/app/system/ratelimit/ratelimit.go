// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxKeys = 10000
	idleTTL = 10 * time.Minute
)

// Limiter keeps one token bucket per key (usually a client IP).
// Buckets idle for ten minutes are dropped. It is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, *rate.Limiter]
	every   rate.Limit
	burst   int
}

// New creates a limiter allowing perMinute events per key with the given
// burst. A burst below 1 is raised to 1.
func New(perMinute, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, idleTTL),
		every:   rate.Limit(float64(perMinute) / 60),
		burst:   burst,
	}
}

// Allow reports whether one more event for key fits in its bucket.
func (l *Limiter) Allow(key string) bool {
	return l.bucket(key).Allow()
}

// Remaining returns roughly how many events key may still spend right now.
func (l *Limiter) Remaining(key string) int {
	n := int(l.bucket(key).Tokens())
	if n < 0 {
		return 0
	}
	return n
}

func (l *Limiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets.Get(key)
	if !ok {
		b = rate.NewLimiter(l.every, l.burst)
	}
	// Re-adding refreshes the idle deadline.
	l.buckets.Add(key, b)
	return b
}

// ClientIP extracts the client IP from an HTTP request.
// It checks X-Forwarded-For and X-Real-IP headers first (for proxied requests),
// then falls back to RemoteAddr.
func ClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (comma-separated list, first is client)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (strip port)
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}
