package booking

import "errors"

var (
	ErrInvalidLocator     = errors.New("locator must be 6 characters from the locator alphabet")
	ErrEmptyName          = errors.New("first and last name are required")
	ErrFieldTooLong       = errors.New("field exceeds maximum length")
	ErrInvalidNationality = errors.New("nationality must be a 2-letter country code")
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter ISO code")
	ErrNegativeAmount     = errors.New("total amount must not be negative")
	ErrEmptyCabinClass    = errors.New("cabin class is required")
	ErrEmptyPaymentStatus = errors.New("payment status is required")
	ErrInvalidTripType    = errors.New("trip type must be outbound or inbound")
	ErrNoSegments         = errors.New("at least one segment is required")
	ErrTooManySegments    = errors.New("too many segments")
	ErrInvalidReference   = errors.New("referenced ids must be positive")
	ErrSeatFlightMismatch = errors.New("seat does not belong to the segment flight")
	ErrSeatUnavailable    = errors.New("seat is not available")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
)
