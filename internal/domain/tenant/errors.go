package tenant

import (
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

func NewTenantNotFoundError(id string) error {
	return ierr.NewError("tenant not found").
		WithHintf("Municipality not found for id: %s", id).
		WithReportableDetails(map[string]any{"tenant_id": id}).
		Mark(ierr.ErrNotFound)
}

// NewProvisioningError is returned when no municipality can be resolved for a user
func NewProvisioningError(userID string) error {
	return ierr.NewError("no tenant could be resolved for user").
		WithHint("Your account is not linked to any municipality").
		WithHint("Ask an administrator to register a municipality and link your account to it").
		WithReportableDetails(map[string]any{"user_id": userID}).
		Mark(ierr.ErrTenantProvisioning)
}
