package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/sentry"
)

// ErrorHandler renders the last error attached to the request with the standard envelope.
// Server errors are logged and sent to Sentry.
func ErrorHandler(monitoring *sentry.Service, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)

		if status >= http.StatusInternalServerError {
			logger.Errorw("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", status,
				"error", err,
			)
			monitoring.CaptureWithContext(c.Request.Context(), err, map[string]string{
				"path": c.FullPath(),
			})
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(status, ierr.NewErrorResponse(err))
	}
}
