//go:build unit || e2e

package builder

import (
	"time"

	dompromo "periop-admin/internal/domain/promocode"
	reqdto "periop-admin/internal/handler/dto/request"
	"periop-admin/internal/usecase/commands"
	"periop-admin/internal/usecase/queries"
	"periop-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromoCodeBuilder struct {
	Code              string
	InfluencerName    string
	InfluencerContact string
	DiscountType      string
	DiscountValue     float64
	Duration          string
	Notes             string
	TimesUsed         int32
	IsActive          bool
	CreatedAt         time.Time
}

func NewPromoCodeBuilder() *PromoCodeBuilder {
	return &PromoCodeBuilder{
		Code:              "DRJ10",
		InfluencerName:    "Dr. Jones",
		InfluencerContact: "drjones@example.com",
		DiscountType:      "percentage",
		DiscountValue:     10,
		Duration:          "once",
		Notes:             "Spring campaign",
		TimesUsed:         0,
		IsActive:          true,
		CreatedAt:         time.Now(),
	}
}

func (p *PromoCodeBuilder) With(mutate func(*PromoCodeBuilder)) *PromoCodeBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PromoCodeBuilder) BuildDomain() (*dompromo.PromoCode, error) {
	return dompromo.NewPromoCode(uuid.New(), dompromo.NewPromoCodeParams{
		Code:              p.Code,
		InfluencerName:    p.InfluencerName,
		InfluencerContact: p.InfluencerContact,
		DiscountType:      p.DiscountType,
		DiscountValue:     p.DiscountValue,
		Duration:          p.Duration,
		Notes:             p.Notes,
	}, p.CreatedAt)
}

func (p *PromoCodeBuilder) BuildCommandRequest() commands.CreatePromoCodeRequest {
	return commands.CreatePromoCodeRequest{
		Code:              p.Code,
		InfluencerName:    p.InfluencerName,
		InfluencerContact: p.InfluencerContact,
		DiscountType:      p.DiscountType,
		DiscountValue:     p.DiscountValue,
		Duration:          p.Duration,
		Notes:             p.Notes,
	}
}

func (p *PromoCodeBuilder) BuildCreateRequestDTO() reqdto.CreatePromoCodeRequest {
	return reqdto.CreatePromoCodeRequest{
		Code:              p.Code,
		InfluencerName:    p.InfluencerName,
		InfluencerContact: p.InfluencerContact,
		DiscountType:      p.DiscountType,
		DiscountValue:     p.DiscountValue,
		Duration:          p.Duration,
		Notes:             p.Notes,
	}
}

func (p *PromoCodeBuilder) BuildView() *queries.PromoCodeView {
	view := &queries.PromoCodeView{
		ID:             uuid.New(),
		Code:           p.Code,
		InfluencerName: p.InfluencerName,
		DiscountType:   p.DiscountType,
		DiscountValue:  p.DiscountValue,
		Duration:       p.Duration,
		TimesUsed:      p.TimesUsed,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
	if p.InfluencerContact != "" {
		contact := p.InfluencerContact
		view.InfluencerContact = &contact
	}
	if p.Notes != "" {
		notes := p.Notes
		view.Notes = &notes
	}
	return view
}

func (p *PromoCodeBuilder) BuildSnapshot() *shared.PromoCodeSnapshot {
	return &shared.PromoCodeSnapshot{
		ID:        uuid.New(),
		Code:      p.Code,
		IsActive:  p.IsActive,
		TimesUsed: p.TimesUsed,
	}
}

// Fluent builder methods
func (p *PromoCodeBuilder) WithCode(code string) *PromoCodeBuilder {
	p.Code = code
	return p
}

func (p *PromoCodeBuilder) WithInfluencerName(name string) *PromoCodeBuilder {
	p.InfluencerName = name
	return p
}

func (p *PromoCodeBuilder) WithInfluencerContact(contact string) *PromoCodeBuilder {
	p.InfluencerContact = contact
	return p
}

func (p *PromoCodeBuilder) WithDiscountType(discountType string) *PromoCodeBuilder {
	p.DiscountType = discountType
	return p
}

func (p *PromoCodeBuilder) WithDiscountValue(value float64) *PromoCodeBuilder {
	p.DiscountValue = value
	return p
}

func (p *PromoCodeBuilder) WithDuration(duration string) *PromoCodeBuilder {
	p.Duration = duration
	return p
}

func (p *PromoCodeBuilder) WithNotes(notes string) *PromoCodeBuilder {
	p.Notes = notes
	return p
}

func (p *PromoCodeBuilder) WithCreatedAt(createdAt time.Time) *PromoCodeBuilder {
	p.CreatedAt = createdAt
	return p
}

func (p *PromoCodeBuilder) AsAmountDiscount(value float64) *PromoCodeBuilder {
	p.DiscountType = "amount"
	p.DiscountValue = value
	return p
}

func (p *PromoCodeBuilder) AsInactive() *PromoCodeBuilder {
	p.IsActive = false
	return p
}
