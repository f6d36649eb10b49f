package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Identity and billing tier are owned by the external user
// directory; this service is only authorized to mutate hasLifetimeAccess.
type User struct {
	id                uuid.UUID
	email             Email
	passwordHash      string
	role              Role
	firstName         string
	lastName          string
	subscriptionTier  SubscriptionTier
	hasLifetimeAccess bool
	lastLogin         *time.Time
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewUser(email Email, passwordHash string, role Role, firstName, lastName string) *User {
	return &User{
		id:               uuid.New(),
		email:            email,
		passwordHash:     passwordHash,
		role:             role,
		firstName:        firstName,
		lastName:         lastName,
		subscriptionTier: TierFree,
		isActive:         true,
	}
}

func (u *User) ID() uuid.UUID                      { return u.id }
func (u *User) Email() Email                       { return u.email }
func (u *User) PasswordHash() string               { return u.passwordHash }
func (u *User) Role() Role                         { return u.role }
func (u *User) FirstName() string                  { return u.firstName }
func (u *User) LastName() string                   { return u.lastName }
func (u *User) SubscriptionTier() SubscriptionTier { return u.subscriptionTier }
func (u *User) HasLifetimeAccess() bool            { return u.hasLifetimeAccess }
func (u *User) LastLogin() *time.Time              { return u.lastLogin }
func (u *User) IsActive() bool                     { return u.isActive }
func (u *User) CreatedAt() time.Time               { return u.createdAt }
func (u *User) UpdatedAt() time.Time               { return u.updatedAt }
