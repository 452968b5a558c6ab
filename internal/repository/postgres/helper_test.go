package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePatterns(t *testing.T) {
	assert.Equal(t, "%merenda%", likePattern(" merenda "))
	assert.Equal(t, `%50\% de desconto%`, likePattern("50% de desconto"))
	assert.Equal(t, `CTR-2025-03-%`, prefixPattern("CTR-2025-03-"))
	assert.Equal(t, `a\_b%`, prefixPattern("a_b"))
}

func TestNamedValues(t *testing.T) {
	assert.Equal(t, ":id, :processo_id, :tenant_id", namedValues("id, processo_id,\n\ttenant_id"))
}

func TestWhereBuilder(t *testing.T) {
	w := &whereBuilder{}
	assert.Equal(t, "", w.sql())

	w.add("tenant_id = ?", "t1")
	w.add("(a ILIKE ? OR b ILIKE ?)", "%x%", "%x%")
	assert.Equal(t, " WHERE tenant_id = ? AND (a ILIKE ? OR b ILIKE ?)", w.sql())
	assert.Len(t, w.args, 3)
}
