package types

import (
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/samber/lo"
)

// UserRole is the access profile of a municipal user
type UserRole string

const (
	UserRoleMasterAdmin       UserRole = "master_admin"
	UserRoleCityhallAdmin     UserRole = "admin_prefeitura"
	UserRoleProcurement       UserRole = "setor_licitacoes"
	UserRoleLegal             UserRole = "setor_juridico"
	UserRoleInternalControl   UserRole = "controle_interno"
	UserRoleFinance           UserRole = "setor_financeiro"
	UserRoleOperational       UserRole = "operacional"
	DefaultUserRole           UserRole = UserRoleOperational
	DefaultActorName                   = "Usuário"
	DefaultTenantNameFallback          = "Prefeitura Padrão"
)

func (r UserRole) Validate() error {
	allowed := []UserRole{
		UserRoleMasterAdmin,
		UserRoleCityhallAdmin,
		UserRoleProcurement,
		UserRoleLegal,
		UserRoleInternalControl,
		UserRoleFinance,
		UserRoleOperational,
	}
	if !lo.Contains(allowed, r) {
		return ierr.NewErrorf("invalid user role: %s", r).
			WithHintf("Role must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}
