package testutil

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

const (
	TestUserEmail = "ana.souza@prefeitura.gov.br"
)

// SetupContext returns a request context of the default test user in the default tenant
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxTenantID, types.DefaultTenantID)
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	ctx = context.WithValue(ctx, types.CtxUserEmail, TestUserEmail)
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}
