package response

import (
	"periop-admin/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PromoCodeResponse struct {
	ID                string  `json:"id"`
	Code              string  `json:"code"`
	InfluencerName    string  `json:"influencerName"`
	InfluencerContact *string `json:"influencerContact,omitempty"`
	DiscountType      string  `json:"discountType"`
	DiscountValue     float64 `json:"discountValue"`
	Duration          string  `json:"duration"`
	Notes             *string `json:"notes,omitempty"`
	TimesUsed         int32   `json:"timesUsed"`
	IsActive          bool    `json:"isActive"`
	CreatedAt         int64   `json:"createdAt"`
}

func FromPromoCodeView(v *queries.PromoCodeView) *PromoCodeResponse {
	resp := &PromoCodeResponse{}
	// copier fills the same-named fields. ID and CreatedAt change
	// representation so copier skips them and they are set by hand.
	_ = copier.Copy(resp, v)
	resp.ID = v.ID.String()
	resp.CreatedAt = v.CreatedAt.Unix()
	return resp
}

func FromPromoCodeList(items []*queries.PromoCodeView) []*PromoCodeResponse {
	res := make([]*PromoCodeResponse, len(items))
	for i, it := range items {
		res[i] = FromPromoCodeView(it)
	}
	return res
}
