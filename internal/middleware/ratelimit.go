package middleware

import (
	"net/http"
	"sync"

	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitPerIP applies a token bucket per client IP. Used on the auth group
// to slow down credential stuffing.
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		lim, ok := buckets[ip]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			buckets[ip] = lim
		}
		mu.Unlock()
		if lim.Allow() {
			c.Next()
			return
		}
		responses.SendError(c, http.StatusTooManyRequests, responses.CodeTooManyRequests, "too many requests")
	}
}
