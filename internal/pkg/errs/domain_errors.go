package errs

import "errors"

// Domain-specific sentinel errors for the admin usecase layers.
// Handlers distinguish them with errors.Is to pick the HTTP status.
var (
	// Promo code errors
	ErrPromoCodeNotFound        = errors.New("promo code not found")
	ErrPromoCodeConflict        = errors.New("promo code already exists")
	ErrPromoCodeAlreadyInactive = errors.New("promo code already inactive")

	// Entitlement errors
	ErrUserNotFound = errors.New("user not found")

	// Authorization errors
	ErrNotAuthorized = errors.New("not authorized")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
