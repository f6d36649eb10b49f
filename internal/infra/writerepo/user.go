package writerepo

import (
	"context"

	"periop-admin/internal/infra"
	"periop-admin/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// SetLifetimeAccess writes the absolute flag value. Postgres reports matched
// rows, so the idempotent re-write of an unchanged value still returns 1 and
// only a missing user returns 0.
func (r *UserRepository) SetLifetimeAccess(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, enabled bool) (int64, error) {
	tag, err := dbtx.Exec(ctx,
		`UPDATE users SET has_lifetime_access = $2, updated_at = now() WHERE id = $1`,
		userID, enabled)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set lifetime access", err)
	}
	return tag.RowsAffected(), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx,
		`UPDATE users SET last_login = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
