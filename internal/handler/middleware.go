package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
// Dog photos may come from other hosts (seeded placeholders, S3), so img-src is open.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Content-Security-Policy", "default-src 'self'; img-src 'self' https: http: data:; script-src 'self'; style-src 'self'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// RateLimiter provides IP-based rate limiting with one token bucket per client.
type RateLimiter struct {
	perMinute         int
	trustedProxyCount int
	mu                sync.Mutex
	clients           map[string]*visitor
	now               func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter allowing perMinute requests per client,
// refilled evenly over the minute. perMinute <= 0 disables limiting.
// trustedProxies is the number of reverse proxies in front of the server;
// with 0, X-Forwarded-For is ignored and the peer address is the key.
func NewRateLimiter(perMinute, trustedProxies int) *RateLimiter {
	if trustedProxies < 0 {
		trustedProxies = 0
	}
	rl := &RateLimiter{
		perMinute:         perMinute,
		trustedProxyCount: trustedProxies,
		clients:           make(map[string]*visitor),
		now:               time.Now,
	}
	if perMinute > 0 {
		go rl.cleanupLoop()
	}
	return rl
}

// cleanupLoop periodically drops clients that have been idle long enough for
// their bucket to be full again.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.evictIdle(time.Now().Add(-2 * time.Minute))
	}
}

func (rl *RateLimiter) evictIdle(before time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.clients {
		if v.lastSeen.Before(before) {
			delete(rl.clients, ip)
		}
	}
}

// reserve returns 0 if the request may proceed, otherwise how long the client must wait.
func (rl *RateLimiter) reserve(ip string) time.Duration {
	now := rl.now()

	rl.mu.Lock()
	v, ok := rl.clients[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMinute)), rl.perMinute)}
		rl.clients[ip] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	res := v.limiter.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return delay
	}
	return 0
}

// Middleware returns an http.Handler that enforces rate limits.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if rl.perMinute <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		if wait := rl.reserve(ip); wait > 0 {
			w.Header().Set("Retry-After", retryAfterSeconds(wait))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			if err := json.NewEncoder(w).Encode(envelope{
				Message: "Too many requests, please try again later.",
			}); err != nil {
				slog.Warn("rate limiter: failed to write response", "error", err)
			}
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP extracts the real client IP, reading from the rightmost trusted
// proxy position in X-Forwarded-For to prevent spoofing.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		// The rightmost entry added by our infrastructure is at
		// index len(parts) - trustedProxyCount.
		idx := len(parts) - rl.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
