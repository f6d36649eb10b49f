package response

import (
	"periop-admin/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserEntitlementResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	SubscriptionTier  string `json:"subscriptionTier"`
	HasLifetimeAccess bool   `json:"hasLifetimeAccess"`
}

func FromUserEntitlementView(v *queries.UserEntitlementView) *UserEntitlementResponse {
	resp := &UserEntitlementResponse{}
	_ = copier.Copy(resp, v)
	resp.ID = v.ID.String()
	return resp
}
