package commands

import (
	"stelwing-booking/internal/pkg/errs"
)

var (
	// ErrLocatorExhausted means no free locator was found within the attempt
	// budget. It points at a broken random source or a saturated code space
	// and needs an operator.
	ErrLocatorExhausted   = errs.New("locator space exhausted")
	ErrFlightNotFound     = errs.New("flight not found")
	ErrSeatNotFound       = errs.New("seat not found")
	ErrSeatFlightMismatch = errs.New("seat does not belong to flight")
	ErrSeatUnavailable    = errs.New("seat unavailable")
	ErrMealNotFound       = errs.New("meal option not found")
	ErrBaggageNotFound    = errs.New("baggage option not found")
	// ErrPersistenceFailure is transient; the same request may be resubmitted.
	ErrPersistenceFailure   = errs.New("persistence failure")
	ErrDomainValidation     = errs.New("domain validation error")
	ErrIdempotencyKeyReused = errs.New("idempotency key reused with a different request")

	ErrReservationNotFound  = errs.New("reservation not found")
	ErrReservationCancelled = errs.New("reservation already cancelled")
	ErrNotReservationOwner  = errs.New("reservation not owned by member")
	ErrSeatNotClaimed       = errs.New("seat is not claimed")
)

// IsRetryable reports whether resubmitting the same request can succeed
// without changing it.
func IsRetryable(err error) bool {
	return errs.Is(err, ErrPersistenceFailure)
}
