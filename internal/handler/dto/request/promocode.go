package request

import (
	"periop-admin/internal/usecase/commands"
)

// CreatePromoCodeRequest carries the raw admin form input. Field checks are
// deliberately left to the domain so every rejection reports which field
// failed, instead of gin's binding error strings.
type CreatePromoCodeRequest struct {
	Code              string  `json:"code"`
	InfluencerName    string  `json:"influencerName"`
	InfluencerContact string  `json:"influencerContact"`
	DiscountType      string  `json:"discountType"`
	DiscountValue     float64 `json:"discountValue"`
	Duration          string  `json:"duration"`
	Notes             string  `json:"notes"`
}

func (r *CreatePromoCodeRequest) ToCommand() commands.CreatePromoCodeRequest {
	return commands.CreatePromoCodeRequest{
		Code:              r.Code,
		InfluencerName:    r.InfluencerName,
		InfluencerContact: r.InfluencerContact,
		DiscountType:      r.DiscountType,
		DiscountValue:     r.DiscountValue,
		Duration:          r.Duration,
		Notes:             r.Notes,
	}
}
