package postgres

import (
	"context"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/user"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
)

const userColumns = `id, tenant_id, email, name, role, active, last_access_at, created_at, updated_at`

type userRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	span := StartRepositorySpan(ctx, "user", "create", map[string]interface{}{"user_id": u.ID})
	defer FinishSpan(span)

	query := `
	INSERT INTO users (` + userColumns + `)
	VALUES (:id, :tenant_id, :email, :name, :role, :active, :last_access_at, :created_at, :updated_at)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, u); err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, "user")
	}

	SetSpanSuccess(span)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.getOne(ctx, "get_by_id", `id = $1`, id)
}

// GetByEmail is only used by login, before a tenant is known
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, "get_by_email", `lower(email) = lower($1)`, email)
}

func (r *userRepository) getOne(ctx context.Context, op, where string, arg interface{}) (*user.User, error) {
	span := StartRepositorySpan(ctx, "user", op, nil)
	defer FinishSpan(span)

	var u user.User
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	err := r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.GetContext(ctx, &u, query, arg)
	})
	if err != nil {
		SetSpanError(span, err)
		if isNoRows(err) {
			return nil, ierr.NewError("user not found").
				WithHint("User not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, postgres.WrapError(err, "user")
	}

	SetSpanSuccess(span)
	return &u, nil
}

func (r *userRepository) AssignTenant(ctx context.Context, userID, tenantID string) error {
	span := StartRepositorySpan(ctx, "user", "assign_tenant", map[string]interface{}{
		"user_id":   userID,
		"tenant_id": tenantID,
	})
	defer FinishSpan(span)

	query := `UPDATE users SET tenant_id = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, tenantID, time.Now().UTC(), userID)
	if err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, "user")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ierr.NewError("user not found").
			WithHint("User not found").
			WithReportableDetails(map[string]any{"user_id": userID}).
			Mark(ierr.ErrNotFound)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *userRepository) TouchLastAccess(ctx context.Context, userID string, at time.Time) error {
	query := `UPDATE users SET last_access_at = $1 WHERE id = $2`
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, at, userID)
	if err != nil {
		return postgres.WrapError(err, "user")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ierr.NewError("user not found").
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
