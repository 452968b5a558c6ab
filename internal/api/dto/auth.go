package dto

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in,omitempty"`
	UserID    string `json:"user_id"`
	TenantID  string `json:"tenant_id,omitempty"`
}

func (r *LoginRequest) Validate() error {
	return validator.ValidateRequest(r)
}
