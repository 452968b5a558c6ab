package service

import (
	"testing"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/auth"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	authService AuthService
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.authService = NewAuthService(params, NewTenantResolver(params))

	s.GetAuthProvider().AddAccount(auth.Claims{
		UserID: types.DefaultUserID,
		Email:  testutil.TestUserEmail,
	}, "senha-segura")
	s.GetAuthProvider().AddAccount(auth.Claims{
		UserID: "user_first_login",
		Email:  "novo@prefeitura.gov.br",
	}, "primeiro-acesso")
}

func (s *AuthServiceSuite) TestLogin() {
	resp, err := s.authService.Login(s.GetContext(), &dto.LoginRequest{
		Email:    testutil.TestUserEmail,
		Password: "senha-segura",
	})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(types.DefaultUserID, resp.UserID)
	s.Equal(types.DefaultTenantID, resp.TenantID)

	claims, err := s.GetAuthProvider().ValidateToken(s.GetContext(), resp.Token)
	s.Require().NoError(err)
	s.Equal(types.DefaultUserID, claims.UserID)

	u, err := s.GetStores().UserRepo.GetByID(s.GetContext(), types.DefaultUserID)
	s.Require().NoError(err)
	s.Require().NotNil(u.LastAccessAt)
	s.True(u.LastAccessAt.Equal(s.GetNow()))
}

func (s *AuthServiceSuite) TestFirstLoginCreatesUser() {
	resp, err := s.authService.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "novo@prefeitura.gov.br",
		Password: "primeiro-acesso",
	})
	s.Require().NoError(err)
	s.Equal(types.DefaultTenantID, resp.TenantID)

	u, err := s.GetStores().UserRepo.GetByID(s.GetContext(), "user_first_login")
	s.Require().NoError(err)
	s.Equal(types.DefaultTenantID, u.GetTenantID())
}

func (s *AuthServiceSuite) TestLoginWithoutTenant() {
	s.GetStores().TenantRepo.Clear()

	resp, err := s.authService.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "novo@prefeitura.gov.br",
		Password: "primeiro-acesso",
	})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Empty(resp.TenantID)
}

func (s *AuthServiceSuite) TestLoginFailures() {
	testCases := []struct {
		name    string
		request dto.LoginRequest
		check   func(error) bool
	}{
		{
			name:    "wrong password",
			request: dto.LoginRequest{Email: testutil.TestUserEmail, Password: "errada"},
			check:   ierr.IsUnauthorized,
		},
		{
			name:    "unknown email",
			request: dto.LoginRequest{Email: "ninguem@prefeitura.gov.br", Password: "x"},
			check:   ierr.IsUnauthorized,
		},
		{
			name:    "invalid email",
			request: dto.LoginRequest{Email: "nao-e-email", Password: "x"},
			check:   ierr.IsValidation,
		},
		{
			name:    "missing password",
			request: dto.LoginRequest{Email: testutil.TestUserEmail},
			check:   ierr.IsValidation,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.authService.Login(s.GetContext(), &tc.request)
			s.Error(err)
			s.True(tc.check(err))
		})
	}
}
