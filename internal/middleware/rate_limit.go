package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-course-portal/internal/pkg/apperror"
	"go-course-portal/internal/pkg/response"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Idle limiters are forgotten after this long.
const limiterTTL = 10 * time.Minute

// RateLimitByIP allows rps requests per second per client IP, with bursts of
// up to burst. A non-positive rps disables the limit.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}

	var mu sync.Mutex
	limiters := gocache.New(limiterTTL, limiterTTL)

	get := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if v, ok := limiters.Get(ip); ok {
			l := v.(*rate.Limiter)
			limiters.SetDefault(ip, l)
			return l
		}
		l := rate.NewLimiter(rate.Limit(rps), burst)
		limiters.SetDefault(ip, l)
		return l
	}

	return func(c *gin.Context) {
		if !get(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, apperror.CodeRateLimited, "Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
