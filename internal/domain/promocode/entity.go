package promocode

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PromoCode is a marketing discount code handed to an influencer partner.
// Only the redemption flow (external to this service) increments timesUsed;
// this service creates codes and retires them.
type PromoCode struct {
	id                uuid.UUID
	code              Code
	influencerName    string
	influencerContact *string
	discount          Discount
	duration          Duration
	notes             *string
	timesUsed         int32
	isActive          bool
	createdAt         time.Time
}

type NewPromoCodeParams struct {
	Code              string
	InfluencerName    string
	InfluencerContact string
	DiscountType      string
	DiscountValue     float64
	Duration          string
	Notes             string
}

// NewPromoCode validates in a fixed order so rejections are deterministic:
// required text fields, then the closed enums, then the discount value.
func NewPromoCode(id uuid.UUID, p NewPromoCodeParams, now time.Time) (*PromoCode, error) {
	code, err := NewCode(p.Code)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(p.InfluencerName)
	if name == "" {
		return nil, ErrEmptyInfluencerName
	}

	duration, err := NewDuration(p.Duration)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(p.DiscountType, p.DiscountValue)
	if err != nil {
		return nil, err
	}

	return &PromoCode{
		id:                id,
		code:              code,
		influencerName:    name,
		influencerContact: optionalText(p.InfluencerContact),
		discount:          discount,
		duration:          duration,
		notes:             optionalText(p.Notes),
		timesUsed:         0,
		isActive:          true,
		createdAt:         now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code Code,
	influencerName string,
	influencerContact *string,
	discount Discount,
	duration Duration,
	notes *string,
	timesUsed int32,
	isActive bool,
	createdAt time.Time,
) *PromoCode {
	return &PromoCode{
		id:                id,
		code:              code,
		influencerName:    influencerName,
		influencerContact: influencerContact,
		discount:          discount,
		duration:          duration,
		notes:             notes,
		timesUsed:         timesUsed,
		isActive:          isActive,
		createdAt:         createdAt,
	}
}

// Deactivate is the only lifecycle transition this service owns.
// Active → Inactive is one-way; there is no reactivation path.
func (p *PromoCode) Deactivate() error {
	if !p.isActive {
		return ErrCodeAlreadyInactive
	}
	p.isActive = false
	return nil
}

func (p *PromoCode) ID() uuid.UUID              { return p.id }
func (p *PromoCode) Code() Code                 { return p.code }
func (p *PromoCode) InfluencerName() string     { return p.influencerName }
func (p *PromoCode) InfluencerContact() *string { return p.influencerContact }
func (p *PromoCode) Discount() Discount         { return p.discount }
func (p *PromoCode) Duration() Duration         { return p.duration }
func (p *PromoCode) Notes() *string             { return p.notes }
func (p *PromoCode) TimesUsed() int32           { return p.timesUsed }
func (p *PromoCode) IsActive() bool             { return p.isActive }
func (p *PromoCode) CreatedAt() time.Time       { return p.createdAt }

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
