// Package usage tracks per-caller request counts and enforces a soft
// rate limit. Everything here is advisory: counts live in process
// memory, reset on restart, and are not shared across replicas.
package usage

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Tracker counts replies per caller and applies a soft rate limit.
type Tracker interface {
	// Record increments the caller's reply counter
	Record(caller string)

	// Count returns the caller's current reply count
	Count(caller string) int

	// Allow reports whether the caller is within the soft rate limit
	Allow(caller string) bool
}

type tracker struct {
	mu     sync.Mutex
	counts map[string]int

	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Tracker limiting each caller to requestsPerMin requests.
func New(requestsPerMin int) Tracker {
	if requestsPerMin <= 0 {
		requestsPerMin = 30
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &tracker{
		counts: make(map[string]int),
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique callers
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (t *tracker) Record(caller string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[caller]++
}

func (t *tracker) Count(caller string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[caller]
}

func (t *tracker) Allow(caller string) bool {
	limiter, ok := t.limiters.Get(caller)
	if !ok {
		limiter = rate.NewLimiter(t.rate, t.burst)
		t.limiters.Add(caller, limiter)
	}
	return limiter.Allow()
}

// CallerID extracts the opaque caller identifier (client IP) from a request.
func CallerID(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fallback to RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
