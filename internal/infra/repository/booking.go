package repository

import (
	"context"
	"time"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/infra/repository/converter"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error)
	CreateBookingDetail(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingDetailParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the header and one detail row per segment, in segment order.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error) {
	bookingID, err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	for _, seg := range b.Segments() {
		if _, err := r.queries.CreateBookingDetail(ctx, tx, converter.SegmentToInfra(bookingID, seg)); err != nil {
			return 0, infra.WrapRepoErr("failed to create booking detail", err)
		}
	}

	return bookingID, nil
}

func (r *BookingRepository) MarkCancelled(ctx context.Context, tx sqlc.DBTX, bookingID int64, at time.Time) error {
	params := sqlc.UpdateBookingStatusParams{
		BookingID: bookingID,
		Status:    booking.StatusCancelled.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	}

	affected, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if affected != 1 {
		return infra.WrapRepoErr("booking already cancelled", nil, infra.KindConflict)
	}

	return nil
}
