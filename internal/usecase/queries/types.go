package queries

import (
	"time"

	"github.com/google/uuid"
)

// PromoCodeView represents read-optimized promo code data
type PromoCodeView struct {
	ID                uuid.UUID `json:"id"`
	Code              string    `json:"code"`
	InfluencerName    string    `json:"influencer_name"`
	InfluencerContact *string   `json:"influencer_contact,omitempty"`
	DiscountType      string    `json:"discount_type"`
	DiscountValue     float64   `json:"discount_value"`
	Duration          string    `json:"duration"`
	Notes             *string   `json:"notes,omitempty"`
	TimesUsed         int32     `json:"times_used"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// UserEntitlementView is the projection of a user record exposed to the
// entitlement admin surface. Everything except HasLifetimeAccess is read-only
// from this service's perspective.
type UserEntitlementView struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	SubscriptionTier  string    `json:"subscription_tier"`
	HasLifetimeAccess bool      `json:"has_lifetime_access"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
