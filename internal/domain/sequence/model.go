package sequence

import (
	"fmt"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// Scope is the unit a process number counter runs in
type Scope struct {
	TenantID string
	Prefix   string
	Year     int
	Month    int
}

func NewScope(tenantID string, processType types.ProcessType, now time.Time) Scope {
	return Scope{
		TenantID: tenantID,
		Prefix:   processType.Prefix(),
		Year:     now.Year(),
		Month:    int(now.Month()),
	}
}

// NumberPrefix is the part of the process number shared by the whole scope, e.g. CTR-2025-03-
func (s Scope) NumberPrefix() string {
	return fmt.Sprintf("%s-%04d-%02d-", s.Prefix, s.Year, s.Month)
}

// Format renders the process number for the n-th process of the scope, e.g. CTR-2025-03-00001
func (s Scope) Format(n int64) string {
	return fmt.Sprintf("%s%05d", s.NumberPrefix(), n)
}
