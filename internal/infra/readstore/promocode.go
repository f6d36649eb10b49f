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

const promoCodeColumns = `id, code, influencer_name, influencer_contact, discount_type, discount_value, duration, notes, times_used, is_active, created_at`

type PromoCodeReadStore struct {
	db db.DBTX
}

func NewPromoCodeReadStore(dbtx db.DBTX) *PromoCodeReadStore {
	return &PromoCodeReadStore{db: dbtx}
}

func (r *PromoCodeReadStore) List(ctx context.Context) ([]*queries.PromoCodeView, error) {
	// created_at, id keeps the order stable even for same-timestamp rows.
	rows, err := r.db.Query(ctx,
		`SELECT `+promoCodeColumns+` FROM promo_codes ORDER BY created_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promo codes", err)
	}
	defer rows.Close()

	var views []*queries.PromoCodeView
	for rows.Next() {
		view, scanErr := scanPromoCodeView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan promo code row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read promo code rows", err)
	}
	return views, nil
}

func (r *PromoCodeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PromoCodeView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+promoCodeColumns+` FROM promo_codes WHERE id = $1`, id)

	view, err := scanPromoCodeView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promo code by ID", err)
	}
	return view, nil
}

// Snapshot reads take an explicit DBTX so command transactions see their own
// uncommitted writes.

func (r *PromoCodeReadStore) FindSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.PromoCodeSnapshot, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT id, code, is_active, times_used FROM promo_codes WHERE id = $1`, id)
	return scanPromoCodeSnapshot(row)
}

func (r *PromoCodeReadStore) FindSnapshotByCode(ctx context.Context, dbtx db.DBTX, canonicalCode string) (*shared.PromoCodeSnapshot, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT id, code, is_active, times_used FROM promo_codes WHERE code = $1`, canonicalCode)
	return scanPromoCodeSnapshot(row)
}

func scanPromoCodeView(row pgx.Row) (*queries.PromoCodeView, error) {
	var v queries.PromoCodeView
	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.InfluencerName,
		&v.InfluencerContact,
		&v.DiscountType,
		&v.DiscountValue,
		&v.Duration,
		&v.Notes,
		&v.TimesUsed,
		&v.IsActive,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanPromoCodeSnapshot(row pgx.Row) (*shared.PromoCodeSnapshot, error) {
	var s shared.PromoCodeSnapshot
	err := row.Scan(&s.ID, &s.Code, &s.IsActive, &s.TimesUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan promo code snapshot", err)
	}
	return &s, nil
}
