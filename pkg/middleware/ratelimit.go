package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// bucket is a token bucket for one client.
type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter keeps a refillable bucket per client IP. Buckets idle for
// longer than staleAfter are dropped by the compaction loop.
type RateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	ratePerSec float64
	burst      float64
	staleAfter time.Duration
	log        *zap.Logger
}

func NewRateLimiter(requestsPerMinute, burst int, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:    make(map[string]*bucket),
		ratePerSec: float64(requestsPerMinute) / 60.0,
		burst:      float64(burst),
		staleAfter: 10 * time.Minute,
		log:        logger.With(zap.String("middleware", "ratelimit")),
	}
	go rl.compactLoop()
	return rl
}

func (rl *RateLimiter) allow(id string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[id]
	if !ok {
		b = &bucket{tokens: rl.burst}
		rl.buckets[id] = b
	} else {
		b.tokens += now.Sub(b.lastSeen).Seconds() * rl.ratePerSec
		if b.tokens > rl.burst {
			b.tokens = rl.burst
		}
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) compactLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-rl.staleAfter)
		rl.mu.Lock()
		for id, b := range rl.buckets {
			if b.lastSeen.Before(cutoff) {
				delete(rl.buckets, id)
			}
		}
		rl.mu.Unlock()
	}
}

// LimitByIP rejects clients that exhausted their bucket with 429.
func (rl *RateLimiter) LimitByIP() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !rl.allow(ip) {
				rl.log.Info("Request blocked",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"status":false,"message":"Too many requests"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
