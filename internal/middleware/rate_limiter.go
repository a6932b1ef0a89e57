package middleware

import (
	"net/http"
	"sync"
	"time"

	"magictravel/internal/apierror"

	"github.com/gin-gonic/gin"
)

// slidingLimiter counts requests per client IP inside a fixed window and
// purges idle entries so the map cannot grow unbounded.
type slidingLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	counts  map[string]int
	expires map[string]time.Time
}

func newSlidingLimiter(limit int, window time.Duration) *slidingLimiter {
	l := &slidingLimiter{
		window:  window,
		limit:   limit,
		counts:  make(map[string]int),
		expires: make(map[string]time.Time),
	}
	go l.purgeLoop()
	return l
}

func (l *slidingLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if exp, ok := l.expires[ip]; !ok || now.After(exp) {
		l.counts[ip] = 0
		l.expires[ip] = now.Add(l.window)
	}
	l.counts[ip]++
	return l.counts[ip] <= l.limit
}

func (l *slidingLimiter) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for ip, exp := range l.expires {
			if now.After(exp) {
				delete(l.expires, ip)
				delete(l.counts, ip)
			}
		}
		l.mu.Unlock()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	limiter := newSlidingLimiter(20, time.Minute)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter is the general-purpose per-IP limiter for the API surface.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	limiter := newSlidingLimiter(limit, window)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.Header("Retry-After", time.Now().Add(window).Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
