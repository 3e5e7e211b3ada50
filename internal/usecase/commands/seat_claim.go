package commands

import (
	"context"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/pkg/errs"
	"stelwing-booking/internal/usecase/shared"
)

// claimSeat validates the requested seat against the segment and takes it.
// The read gives precise errors; the guarded update is what makes the claim
// exclusive, so a seat read as available can still come back unavailable.
func (uc *bookingUseCaseImpl) claimSeat(ctx context.Context, tx shared.Tx, seg booking.Segment) error {
	seatID := seg.SeatID()
	if seatID == nil {
		return nil
	}

	seat, err := tx.Reads().SeatByID(ctx, *seatID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSeatNotFound
		}
		return err
	}

	switch verr := seg.VerifySeat(*seat); verr {
	case nil:
	case booking.ErrSeatFlightMismatch:
		return ErrSeatFlightMismatch
	case booking.ErrSeatUnavailable:
		uc.metrics.SeatConflict()
		return ErrSeatUnavailable
	default:
		return verr
	}

	if err := tx.Seats().Claim(ctx, tx.DB(), *seatID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			uc.metrics.SeatConflict()
			return errs.Mark(err, ErrSeatUnavailable)
		}
		return err
	}
	return nil
}

// releaseSeats is the reverse primitive used by cancellation. Every seat must
// still be claimed; anything else means inventory drifted and the whole
// cancellation aborts.
func releaseSeats(ctx context.Context, tx shared.Tx, seatIDs []int64) error {
	for _, id := range seatIDs {
		if err := tx.Seats().Release(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.WithDetail(errs.Mark(err, ErrSeatNotClaimed), "seat_id=%d", id)
			}
			return err
		}
	}
	return nil
}
