package shared

import (
	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type PromoCodeSnapshot struct {
	ID        uuid.UUID
	Code      string
	IsActive  bool
	TimesUsed int32
}

type UserSnapshot struct {
	ID                uuid.UUID
	Email             string
	HasLifetimeAccess bool
}
