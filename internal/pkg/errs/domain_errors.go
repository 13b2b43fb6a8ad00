package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Turf catalog errors
	ErrTurfNotFound = errors.New("turf not found")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidSelection  = errors.New("invalid booking selection")
	ErrSlotUnavailable   = errors.New("slot is not available")
	ErrAvailabilityQuery = errors.New("availability query failed")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCoupon  = errors.New("invalid coupon")

	// Squad errors
	ErrSquadNotFound       = errors.New("squad not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrRosterFull          = errors.New("roster is full")
	ErrCannotRemoveCaptain = errors.New("captain cannot be removed")

	// Checkout errors
	ErrPaymentFailed = errors.New("payment failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
