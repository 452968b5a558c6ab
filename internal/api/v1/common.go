package v1

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

// bindJSON decodes the body into req, attaching a validation error on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}
