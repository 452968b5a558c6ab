package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/tenant"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/samber/lo"
)

type TenantService interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error)
	GetTenantByID(ctx context.Context, id string) (*dto.TenantResponse, error)
	GetAllTenants(ctx context.Context) ([]*dto.TenantResponse, error)
}

type tenantService struct {
	ServiceParams
}

func NewTenantService(params ServiceParams) TenantService {
	return &tenantService{ServiceParams: params}
}

func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newTenant := req.ToTenant()
	if err := s.TenantRepo.Create(ctx, newTenant); err != nil {
		return nil, err
	}

	s.Logger.Infow("created tenant",
		"tenant_id", newTenant.ID,
		"name", newTenant.Name,
		"created_by", types.GetUserID(ctx),
	)
	return dto.NewTenantResponse(newTenant), nil
}

func (s *tenantService) GetTenantByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	t, err := s.TenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewTenantResponse(t), nil
}

func (s *tenantService) GetAllTenants(ctx context.Context) ([]*dto.TenantResponse, error) {
	tenants, err := s.TenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(tenants, func(t *tenant.Tenant, _ int) *dto.TenantResponse {
		return dto.NewTenantResponse(t)
	}), nil
}
