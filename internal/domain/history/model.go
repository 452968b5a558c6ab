package history

import (
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// Entry is one immutable line of a process audit trail
type Entry struct {
	ID            string               `db:"id" json:"id"`
	ProcessID     string               `db:"process_id" json:"process_id"`
	TenantID      string               `db:"tenant_id" json:"tenant_id"`
	ActorID       string               `db:"actor_id" json:"actor_id"`
	ActorName     string               `db:"actor_name" json:"actor_name"`
	Section       types.HistorySection `db:"section" json:"section"`
	Action        types.HistoryAction  `db:"action" json:"action"`
	FieldChanged  *string              `db:"field_changed" json:"field_changed,omitempty"`
	PreviousValue *string              `db:"previous_value" json:"previous_value,omitempty"`
	NewValue      *string              `db:"new_value" json:"new_value,omitempty"`
	Description   string               `db:"description" json:"description"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
}

// Actor identifies who performed a change
type Actor struct {
	ID   string
	Name string
}
