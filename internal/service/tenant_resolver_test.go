package service

import (
	"errors"
	"testing"

	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/stretchr/testify/suite"
)

type TenantResolverSuite struct {
	testutil.BaseServiceTestSuite
	resolver TenantResolver
}

func TestTenantResolver(t *testing.T) {
	suite.Run(t, new(TenantResolverSuite))
}

func (s *TenantResolverSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.resolver = NewTenantResolver(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *TenantResolverSuite) newUserClaims() *auth.Claims {
	return &auth.Claims{UserID: "user_new", Email: "carlos.lima@prefeitura.gov.br"}
}

func (s *TenantResolverSuite) TestTokenTenantWins() {
	res, err := s.resolver.Resolve(s.GetContext(), &auth.Claims{
		UserID:   types.DefaultUserID,
		TenantID: "tenant_from_token",
	})
	s.Require().NoError(err)
	s.Equal("tenant_from_token", res.TenantID)
	s.Equal(TenantSourceToken, res.Source)
}

func (s *TenantResolverSuite) TestUserTenant() {
	res, err := s.resolver.Resolve(s.GetContext(), &auth.Claims{UserID: types.DefaultUserID, Email: testutil.TestUserEmail})
	s.Require().NoError(err)
	s.Equal(types.DefaultTenantID, res.TenantID)
	s.Equal(TenantSourceUser, res.Source)
}

func (s *TenantResolverSuite) TestFirstActiveTenantIsAssigned() {
	res, err := s.resolver.Resolve(s.GetContext(), s.newUserClaims())
	s.Require().NoError(err)
	s.Equal(types.DefaultTenantID, res.TenantID)
	s.Equal(TenantSourceFirstActive, res.Source)

	u, err := s.GetStores().UserRepo.GetByID(s.GetContext(), "user_new")
	s.Require().NoError(err)
	s.Equal(types.DefaultTenantID, u.GetTenantID())
	s.Equal("carlos.lima@prefeitura.gov.br", u.Email)
	s.Equal(types.DefaultTenantID, s.GetAuthProvider().Assignment("user_new"))
}

func (s *TenantResolverSuite) TestAssignmentFailuresDoNotBlock() {
	s.GetAuthProvider().FailAssignments(errors.New("metadata update failed"))
	s.GetStores().UserRepo.FailOn("assign_tenant", errors.New("connection reset"))

	res, err := s.resolver.Resolve(s.GetContext(), s.newUserClaims())
	s.Require().NoError(err)
	s.Equal(types.DefaultTenantID, res.TenantID)
	s.Empty(s.GetAuthProvider().Assignment("user_new"))
}

func (s *TenantResolverSuite) TestNoTenantAvailable() {
	s.GetStores().TenantRepo.Clear()

	_, err := s.resolver.Resolve(s.GetContext(), s.newUserClaims())
	s.Error(err)
	s.True(ierr.IsTenantProvisioning(err))
}

func (s *TenantResolverSuite) TestAutoCreatedDefaultTenant() {
	s.GetStores().TenantRepo.Clear()
	s.GetConfig().Tenancy.AutoCreateDefault = true

	res, err := s.resolver.Resolve(s.GetContext(), s.newUserClaims())
	s.Require().NoError(err)
	s.Equal(TenantSourceDefault, res.Source)

	tenants, err := s.GetStores().TenantRepo.List(s.GetContext())
	s.Require().NoError(err)
	s.Require().Len(tenants, 1)
	s.Equal(res.TenantID, tenants[0].ID)
	s.Equal("Prefeitura Municipal", tenants[0].Name)
	s.Equal(res.TenantID, s.GetAuthProvider().Assignment("user_new"))
}

func (s *TenantResolverSuite) TestBackendFailurePropagates() {
	s.GetStores().TenantRepo.FailOn("first_active", ierr.NewError("connection refused").Mark(ierr.ErrDatabase))

	_, err := s.resolver.Resolve(s.GetContext(), s.newUserClaims())
	s.True(ierr.IsDatabase(err))
}

func (s *TenantResolverSuite) TestResolutionIsCached() {
	claims := &auth.Claims{UserID: types.DefaultUserID}

	first, err := s.resolver.Resolve(s.GetContext(), claims)
	s.Require().NoError(err)

	s.Require().NoError(s.GetStores().UserRepo.AssignTenant(s.GetContext(), types.DefaultUserID, "tenant_moved"))

	cached, err := s.resolver.Resolve(s.GetContext(), claims)
	s.Require().NoError(err)
	s.Equal(first.TenantID, cached.TenantID)

	s.resolver.Invalidate(s.GetContext(), types.DefaultUserID)

	fresh, err := s.resolver.Resolve(s.GetContext(), claims)
	s.Require().NoError(err)
	s.Equal("tenant_moved", fresh.TenantID)
}

func (s *TenantResolverSuite) TestMissingClaims() {
	_, err := s.resolver.Resolve(s.GetContext(), nil)
	s.True(ierr.IsUnauthorized(err))

	_, err = s.resolver.Resolve(s.GetContext(), &auth.Claims{})
	s.True(ierr.IsUnauthorized(err))
}
