package queries

import (
	"context"

	"periop-admin/internal/infra"
	"periop-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

type PromoCodeQueries interface {
	// List returns every code, active and inactive, in creation order so
	// repeated reads without mutation yield identical sequences.
	List(ctx context.Context) ([]*PromoCodeView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PromoCodeView, error)
}

type PromoCodeReadStore interface {
	List(ctx context.Context) ([]*PromoCodeView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PromoCodeView, error)
}

type promoCodeQueriesImpl struct {
	readStore PromoCodeReadStore
}

func NewPromoCodeQueries(readStore PromoCodeReadStore) PromoCodeQueries {
	return &promoCodeQueriesImpl{
		readStore: readStore,
	}
}

func (q *promoCodeQueriesImpl) List(ctx context.Context) ([]*PromoCodeView, error) {
	return q.readStore.List(ctx)
}

func (q *promoCodeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PromoCodeView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPromoCodeNotFound
		}
		return nil, err
	}
	return view, nil
}
