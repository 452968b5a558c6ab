package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"golang.org/x/time/rate"
)

const limiterIdleExpiry = 10 * time.Minute

// LoginRateLimitMiddleware throttles password sign-in attempts per client ip.
// Idle limiters are evicted after limiterIdleExpiry.
func LoginRateLimitMiddleware(cfg config.ServerConfig) gin.HandlerFunc {
	if cfg.LoginRatePerMinute <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	burst := cfg.LoginBurst
	if burst <= 0 {
		burst = 1
	}
	every := rate.Every(time.Minute / time.Duration(cfg.LoginRatePerMinute))
	limiters := cache.New(limiterIdleExpiry, 2*limiterIdleExpiry)
	var mu sync.Mutex

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := limiters.Get(ip); ok {
			limiters.SetDefault(ip, l)
			return l.(*rate.Limiter)
		}
		l := rate.NewLimiter(every, burst)
		limiters.SetDefault(ip, l)
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			abortWith(c, ierr.NewError("login rate limit exceeded").
				WithHint("Too many login attempts, wait a minute and try again").
				Mark(ierr.ErrRateLimited))
			return
		}
		c.Next()
	}
}
