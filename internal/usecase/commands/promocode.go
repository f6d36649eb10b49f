package commands

import (
	"context"

	dompromo "periop-admin/internal/domain/promocode"
	"periop-admin/internal/infra"
	"periop-admin/internal/pkg/clock"
	"periop-admin/internal/pkg/errs"
	"periop-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePromoCodeResult struct {
	PromoCodeID uuid.UUID
}

type PromoCodeCommands interface {
	Create(ctx context.Context, req CreatePromoCodeRequest) (*CreatePromoCodeResult, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type CreatePromoCodeRequest struct {
	Code              string
	InfluencerName    string
	InfluencerContact string
	DiscountType      string
	DiscountValue     float64
	Duration          string
	Notes             string
}

type promoCodeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPromoCodeCommands(uow shared.UnitOfWork, clk clock.Clock) PromoCodeCommands {
	return &promoCodeCommandsImpl{uow: uow, clock: clk}
}

func (uc *promoCodeCommandsImpl) Create(ctx context.Context, req CreatePromoCodeRequest) (*CreatePromoCodeResult, error) {
	pc, err := dompromo.NewPromoCode(uuid.New(), dompromo.NewPromoCodeParams{
		Code:              req.Code,
		InfluencerName:    req.InfluencerName,
		InfluencerContact: req.InfluencerContact,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		Duration:          req.Duration,
		Notes:             req.Notes,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Pre-check is an optimization only; the unique index on the
		// canonical code is the source of truth under concurrent creates.
		_, rerr := tx.Reads().PromoCodeByCode(ctx, pc.Code().String())
		if rerr == nil {
			return errs.ErrPromoCodeConflict
		}
		if !infra.IsKind(rerr, infra.KindNotFound) {
			return rerr
		}
		return tx.PromoCodes().Create(ctx, tx.DB(), pc)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrPromoCodeConflict
		}
		return nil, err
	}

	return &CreatePromoCodeResult{PromoCodeID: pc.ID()}, nil
}

func (uc *promoCodeCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().PromoCodeByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrPromoCodeNotFound
			}
			return err
		}
		if !snap.IsActive {
			return errs.ErrPromoCodeAlreadyInactive
		}

		affected, err := tx.PromoCodes().Deactivate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		// Raced with another deactivation between the read and the update.
		if affected == 0 {
			return errs.ErrPromoCodeAlreadyInactive
		}
		return nil
	})
}
