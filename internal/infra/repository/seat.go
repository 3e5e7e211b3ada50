package repository

import (
	"context"
	"fmt"

	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
)

type SeatWriteQueries interface {
	ClaimSeat(ctx context.Context, db sqlc.DBTX, seatID int64) (int64, error)
	ReleaseSeat(ctx context.Context, db sqlc.DBTX, seatID int64) (int64, error)
}

type SeatRepository struct {
	queries SeatWriteQueries
	db      sqlc.DBTX
}

func NewSeatRepository(queries SeatWriteQueries, db sqlc.DBTX) *SeatRepository {
	return &SeatRepository{
		queries: queries,
		db:      db,
	}
}

// Claim flips an available seat to taken. The update is guarded by
// is_available = true, so of two concurrent claimants exactly one sees a row
// affected; the other gets KindConflict.
func (r *SeatRepository) Claim(ctx context.Context, tx sqlc.DBTX, seatID int64) error {
	affected, err := r.queries.ClaimSeat(ctx, tx, seatID)
	if err != nil {
		return infra.WrapRepoErr("failed to claim seat", err)
	}
	if affected != 1 {
		return infra.WrapRepoErr(fmt.Sprintf("seat %d is not available", seatID), nil, infra.KindConflict)
	}
	return nil
}

// Release is the mirrored guard: only a taken seat flips back.
func (r *SeatRepository) Release(ctx context.Context, tx sqlc.DBTX, seatID int64) error {
	affected, err := r.queries.ReleaseSeat(ctx, tx, seatID)
	if err != nil {
		return infra.WrapRepoErr("failed to release seat", err)
	}
	if affected != 1 {
		return infra.WrapRepoErr(fmt.Sprintf("seat %d is not claimed", seatID), nil, infra.KindConflict)
	}
	return nil
}
