package types

import (
	"context"
	"time"
)

// BaseModel carries the tenant and audit columns shared by every process record.
// The tenant id is always an equality filter, never optional.
type BaseModel struct {
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	UpdatedBy string    `db:"updated_by" json:"updated_by"`
}

// GetDefaultBaseModel stamps a new record with the tenant and user of the request
func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		TenantID:  GetTenantID(ctx),
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: GetUserID(ctx),
		UpdatedBy: GetUserID(ctx),
	}
}

// Stamp sets both timestamps, services call it with their injected clock
func (b *BaseModel) Stamp(now time.Time) {
	b.CreatedAt = now.UTC()
	b.UpdatedAt = b.CreatedAt
}

// Touch records an update made by userID at now
func (b *BaseModel) Touch(now time.Time, userID string) {
	b.UpdatedAt = now.UTC()
	if userID != "" {
		b.UpdatedBy = userID
	}
}
