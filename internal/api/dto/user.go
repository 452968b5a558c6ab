package dto

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/user"
)

type UserResponse struct {
	*user.User
	Tenant *TenantResponse `json:"tenant,omitempty"`
}

func NewUserResponse(u *user.User, t *tenant.Tenant) *UserResponse {
	resp := &UserResponse{User: u}
	if t != nil {
		resp.Tenant = NewTenantResponse(t)
	}
	return resp
}
