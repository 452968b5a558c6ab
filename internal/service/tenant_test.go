package service

import (
	"testing"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type TenantServiceSuite struct {
	testutil.BaseServiceTestSuite
	tenantService TenantService
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceSuite))
}

func (s *TenantServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.tenantService = NewTenantService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *TenantServiceSuite) TestCreateTenant() {
	testCases := []struct {
		name          string
		request       dto.CreateTenantRequest
		expectedError bool
		expectedName  string
		expectedState string
	}{
		{
			name: "valid municipality",
			request: dto.CreateTenantRequest{
				Name:  "  Prefeitura de Ouro Preto ",
				City:  lo.ToPtr("Ouro Preto"),
				State: lo.ToPtr("mg"),
			},
			expectedName:  "Prefeitura de Ouro Preto",
			expectedState: "MG",
		},
		{
			name:          "missing name",
			request:       dto.CreateTenantRequest{Name: "   "},
			expectedError: true,
		},
		{
			name: "state with three letters",
			request: dto.CreateTenantRequest{
				Name:  "Prefeitura de Itabira",
				State: lo.ToPtr("MGS"),
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.tenantService.CreateTenant(s.GetContext(), tc.request)
			if tc.expectedError {
				s.Error(err)
				s.True(ierr.IsValidation(err))
				return
			}

			s.Require().NoError(err)
			s.Equal(tc.expectedName, resp.Name)
			s.Equal(tc.expectedState, lo.FromPtr(resp.State))
			s.Equal(types.StatusActive, resp.Status)
			s.NotEmpty(resp.ID)
		})
	}
}

func (s *TenantServiceSuite) TestGetTenantByID() {
	resp, err := s.tenantService.GetTenantByID(s.GetContext(), types.DefaultTenantID)
	s.Require().NoError(err)
	s.Equal("Prefeitura de Teste", resp.Name)

	_, err = s.tenantService.GetTenantByID(s.GetContext(), "tenant_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *TenantServiceSuite) TestGetAllTenants() {
	_, err := s.tenantService.CreateTenant(s.GetContext(), dto.CreateTenantRequest{Name: "Prefeitura de Mariana"})
	s.Require().NoError(err)

	tenants, err := s.tenantService.GetAllTenants(s.GetContext())
	s.Require().NoError(err)
	s.Require().Len(tenants, 2)
	s.Equal("Prefeitura de Teste", tenants[0].Name)
	s.Equal("Prefeitura de Mariana", tenants[1].Name)
}
