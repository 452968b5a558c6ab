package postgres

import (
	"context"

	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// RequireTenantID returns the tenant every query in ctx must be scoped to.
// Repositories refuse to run unscoped statements.
func RequireTenantID(ctx context.Context) (string, error) {
	tenantID := types.GetTenantID(ctx)
	if tenantID == "" {
		return "", ierr.NewError("tenant id missing from context").
			WithHint("No municipality is associated with this request").
			Mark(ierr.ErrTenantProvisioning)
	}
	return tenantID, nil
}
