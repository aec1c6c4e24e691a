package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Stale clients are pruned
// in the background so the map stays bounded.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	perMinute int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		perMinute: perMinute,
	}
	go rl.pruneLoop()
	return rl
}

// Allow reports whether the client may proceed. perMinute <= 0 disables
// limiting.
func (rl *RateLimiter) Allow(clientIP string) bool {
	if rl.perMinute <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[clientIP]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.perMinute)/60), rl.perMinute),
		}
		rl.clients[clientIP] = cl
	}
	cl.lastSeen = time.Now()

	return cl.limiter.Allow()
}

// ActiveClients reports how many client buckets are currently tracked.
func (rl *RateLimiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *RateLimiter) pruneLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-3 * time.Minute)
		rl.mu.Lock()
		for ip, cl := range rl.clients {
			if cl.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit rejects clients over their per-minute budget with 429.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(clientIP(c)) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded. Maximum requests per minute reached.",
				"retry_after": 60,
				"timestamp":   time.Now().UTC().Format(time.RFC3339),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// clientIP prefers the first X-Forwarded-For hop, matching how the service
// is deployed behind a proxy.
func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	return c.ClientIP()
}
