package shared

import (
	"context"

	"periop-admin/internal/domain/promocode"
	"periop-admin/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	PromoCodes() PromoCodeRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PromoCodeByID(ctx context.Context, id uuid.UUID) (*PromoCodeSnapshot, error)
	PromoCodeByCode(ctx context.Context, canonicalCode string) (*PromoCodeSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type PromoCodeRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, pc *promocode.PromoCode) error
	// Deactivate flips is_active for a currently active row and reports how
	// many rows changed, so callers can tell a lost race from a missing row.
	Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository interface {
	// SetLifetimeAccess assigns the absolute flag value (never a toggle) and
	// reports matched rows; writing the already-current value still matches.
	SetLifetimeAccess(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, enabled bool) (int64, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
