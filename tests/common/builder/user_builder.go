//go:build unit || e2e

package builder

import (
	"periop-admin/internal/domain/user"
	"periop-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email             string
	PasswordHash      string
	Role              string
	FirstName         string
	LastName          string
	SubscriptionTier  string
	HasLifetimeAccess bool
	IsActive          bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:             "test@example.com",
		PasswordHash:      "hashed_password",
		Role:              "admin",
		FirstName:         "Test",
		LastName:          "User",
		SubscriptionTier:  "free",
		HasLifetimeAccess: false,
		IsActive:          true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.FirstName, u.LastName), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildEntitlementView() *queries.UserEntitlementView {
	return &queries.UserEntitlementView{
		ID:                uuid.New(),
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		SubscriptionTier:  u.SubscriptionTier,
		HasLifetimeAccess: u.HasLifetimeAccess,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithSubscriptionTier(tier string) *UserBuilder {
	u.SubscriptionTier = tier
	return u
}

func (u *UserBuilder) WithLifetimeAccess() *UserBuilder {
	u.HasLifetimeAccess = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
