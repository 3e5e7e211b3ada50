package booking

// SeatState is the inventory row as read inside the commit transaction.
type SeatState struct {
	ID        int64
	FlightID  int64
	Available bool
}

// VerifySeat checks ownership before availability so a seat of another
// flight is reported as a mismatch even when it is taken.
func (s Segment) VerifySeat(seat SeatState) error {
	if seat.FlightID != s.flightID {
		return ErrSeatFlightMismatch
	}
	if !seat.Available {
		return ErrSeatUnavailable
	}
	return nil
}
