package sequence

import (
	"testing"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScopeFormat(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	contract := NewScope("tenant_a", types.ProcessTypeContract, now)
	assert.Equal(t, "CTR-2025-03-", contract.NumberPrefix())
	assert.Equal(t, "CTR-2025-03-00001", contract.Format(1))
	assert.Equal(t, "CTR-2025-03-00042", contract.Format(42))

	bid := NewScope("tenant_a", types.ProcessTypeBid, time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "LIC-2024-11-12345", bid.Format(12345))
}
