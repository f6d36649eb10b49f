package readstore

import (
	"context"
	"errors"

	"periop-admin/internal/infra"
	"periop-admin/internal/infra/db"
	"periop-admin/internal/usecase/queries"
	"periop-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, role, is_active FROM users WHERE id = $1`, id)

	var v queries.AuthorizedUserView
	if err := row.Scan(&v.ID, &v.Email, &v.Role, &v.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`, email)

	var (
		v            queries.AuthorizedUserView
		passwordHash string
	)
	if err := row.Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &passwordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, passwordHash, nil
}

func (r *UserReadStore) FindEntitlementByID(ctx context.Context, id uuid.UUID) (*queries.UserEntitlementView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, subscription_tier, has_lifetime_access
		   FROM users WHERE id = $1`, id)
	return scanEntitlementView(row)
}

func (r *UserReadStore) FindEntitlementByEmail(ctx context.Context, email string) (*queries.UserEntitlementView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, subscription_tier, has_lifetime_access
		   FROM users WHERE email = $1`, email)
	return scanEntitlementView(row)
}

func (r *UserReadStore) FindSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT id, email, has_lifetime_access FROM users WHERE id = $1`, id)

	var s shared.UserSnapshot
	if err := row.Scan(&s.ID, &s.Email, &s.HasLifetimeAccess); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user snapshot", err)
	}
	return &s, nil
}

func scanEntitlementView(row pgx.Row) (*queries.UserEntitlementView, error) {
	var v queries.UserEntitlementView
	err := row.Scan(&v.ID, &v.Email, &v.FirstName, &v.LastName, &v.SubscriptionTier, &v.HasLifetimeAccess)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user entitlement row", err)
	}
	return &v, nil
}
