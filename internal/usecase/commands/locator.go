package commands

import (
	"context"
	"log/slog"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/pkg/errs"
	"stelwing-booking/internal/usecase/shared"
)

const pnrConstraint = "bookings_pnr_key"

// errLocatorTaken marks an insert rejected by the pnr unique constraint. The
// existence check and the insert are not atomic, so two commits can still
// race for one candidate; the constraint decides and the loser starts over.
var errLocatorTaken = errs.New("locator taken by a concurrent commit")

// reserveLocator draws candidates until one is free on the commit tx.
func (uc *bookingUseCaseImpl) reserveLocator(ctx context.Context, tx shared.Tx) (booking.Locator, error) {
	for attempt := 1; attempt <= uc.cfg.LocatorMaxAttempts; attempt++ {
		candidate, err := uc.locators.Generate()
		if err != nil {
			return "", errs.Wrap(err, "generate locator")
		}

		taken, err := tx.Reads().LocatorExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}

		uc.metrics.LocatorCollision()
		slog.Debug("locator collision", "attempt", attempt)
	}

	uc.metrics.LocatorExhausted()
	slog.Error("locator space exhausted", "attempts", uc.cfg.LocatorMaxAttempts)
	return "", ErrLocatorExhausted
}

func isLocatorTaken(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == pnrConstraint
}
