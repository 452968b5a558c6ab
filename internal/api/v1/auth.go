package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// @Summary Login
// @Description Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 401 {object} ierr.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	authResponse, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.logger.Debugw("login failed", "email", req.Email, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResponse(authResponse))
}
