package commands

import (
	"context"

	"periop-admin/internal/infra"
	"periop-admin/internal/pkg/errs"
	"periop-admin/internal/usecase/queries"
	"periop-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

// EntitlementCommands mutates exactly one field on the externally owned user
// record: the lifetime-access flag. Both operations assign an absolute value,
// so they are idempotent and need no locking beyond the single-row write.
type EntitlementCommands interface {
	Grant(ctx context.Context, userID uuid.UUID) (*queries.UserEntitlementView, error)
	Revoke(ctx context.Context, userID uuid.UUID) (*queries.UserEntitlementView, error)
}

type entitlementCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
}

func NewEntitlementCommands(uow shared.UnitOfWork, readStore queries.UserReadStore) EntitlementCommands {
	return &entitlementCommandsImpl{uow: uow, readStore: readStore}
}

func (uc *entitlementCommandsImpl) Grant(ctx context.Context, userID uuid.UUID) (*queries.UserEntitlementView, error) {
	return uc.setLifetimeAccess(ctx, userID, true)
}

func (uc *entitlementCommandsImpl) Revoke(ctx context.Context, userID uuid.UUID) (*queries.UserEntitlementView, error) {
	return uc.setLifetimeAccess(ctx, userID, false)
}

func (uc *entitlementCommandsImpl) setLifetimeAccess(ctx context.Context, userID uuid.UUID, enabled bool) (*queries.UserEntitlementView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, werr := tx.Users().SetLifetimeAccess(ctx, tx.DB(), userID, enabled)
		if werr != nil {
			return werr
		}
		if affected == 0 {
			return errs.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.readStore.FindEntitlementByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
