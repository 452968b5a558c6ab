package middleware

import (
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// SentryMiddleware returns a middleware that attaches a sentry hub to every request
func SentryMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	if !cfg.Sentry.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// SentryScopeMiddleware tags the request hub so panics carry the request id and route.
// It must run after SentryMiddleware and RequestIDMiddleware.
func SentryScopeMiddleware(c *gin.Context) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		requestID := types.GetRequestID(c.Request.Context())
		route := c.FullPath()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("request_id", requestID)
			scope.SetTag("route", route)
		})
	}
	c.Next()
}
