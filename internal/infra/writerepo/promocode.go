package writerepo

import (
	"context"
	"errors"

	"periop-admin/internal/domain/promocode"
	"periop-admin/internal/infra"
	"periop-admin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type PromoCodeRepository struct{}

func NewPromoCodeRepository() *PromoCodeRepository {
	return &PromoCodeRepository{}
}

func (r *PromoCodeRepository) Create(ctx context.Context, dbtx db.DBTX, pc *promocode.PromoCode) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO promo_codes
		   (id, code, influencer_name, influencer_contact, discount_type, discount_value, duration, notes, times_used, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		pc.ID(),
		pc.Code().String(),
		pc.InfluencerName(),
		pc.InfluencerContact(),
		pc.Discount().Type().String(),
		pc.Discount().Value(),
		pc.Duration().String(),
		pc.Notes(),
		pc.TimesUsed(),
		pc.IsActive(),
		pc.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("promo code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert promo code", err)
	}
	return nil
}

// The is_active predicate makes the update a no-op when another session won
// the race; callers decide what zero affected rows means.
func (r *PromoCodeRepository) Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx,
		`UPDATE promo_codes SET is_active = FALSE WHERE id = $1 AND is_active`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate promo code", err)
	}
	return tag.RowsAffected(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
