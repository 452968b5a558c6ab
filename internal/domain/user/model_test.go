package user

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestActorName(t *testing.T) {
	u := NewUser("", "maria.silva@prefeitura.sp.gov.br")
	assert.Equal(t, "maria.silva", u.ActorName())

	u.Name = lo.ToPtr("  Maria Silva ")
	assert.Equal(t, "Maria Silva", u.ActorName())

	u.Name = lo.ToPtr("")
	u.Email = ""
	assert.Equal(t, "Usuário", u.ActorName())

	var missing *User
	assert.Equal(t, "Usuário", missing.ActorName())
}
