package errs

import "errors"

// Domain-specific sentinel errors shared by command and query layers
var (
	// Registration / verification errors
	ErrMemberNotFound    = errors.New("member not found")
	ErrAlreadyRegistered = errors.New("mobile number already registered and verified")
	ErrAlreadyVerified   = errors.New("member already verified")
	ErrCodeMismatch      = errors.New("invalid verification code")
	ErrCodeExpired       = errors.New("verification code expired")

	// Ledger / redemption errors
	ErrMemberNotEligible       = errors.New("member not found or not verified")
	ErrCatalogEntryUnavailable = errors.New("coupon not found or not active")
	ErrInsufficientBalance     = errors.New("insufficient points")

	// Operation errors
	ErrStorageFailure = errors.New("storage operation failed")
)
