package queries

import (
	"context"

	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	GetByLocator(ctx context.Context, locator string) (*ReservationView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, after string, limit int) (*BookingPage, error)
}

// BookingViewStore reads the header and its segments with the given db, so a
// caller can run both reads in one snapshot.
type BookingViewStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*ReservationView, error)
	FindByLocator(ctx context.Context, db sqlc.DBTX, locator string) (*ReservationView, error)
	ListByMember(ctx context.Context, db sqlc.DBTX, memberID uuid.UUID, after *BookingCursor, limit int) ([]BookingSummary, error)
}

type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type bookingQueriesImpl struct {
	runner ReadOnlyRunner
	store  BookingViewStore
}

func NewBookingQueries(runner ReadOnlyRunner, store BookingViewStore) BookingQueries {
	return &bookingQueriesImpl{runner: runner, store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	return q.read(ctx, func(ctx context.Context, db sqlc.DBTX) (*ReservationView, error) {
		return q.store.FindByID(ctx, db, id)
	})
}

func (q *bookingQueriesImpl) GetByLocator(ctx context.Context, locator string) (*ReservationView, error) {
	return q.read(ctx, func(ctx context.Context, db sqlc.DBTX) (*ReservationView, error) {
		return q.store.FindByLocator(ctx, db, locator)
	})
}

// ListByMember pages through a member's bookings, newest first.
func (q *bookingQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID, after string, limit int) (*BookingPage, error) {
	cursor, err := DecodeAfterCursor(after)
	if err != nil {
		return nil, err
	}
	limit = ValidateLimit(limit)

	var rows []BookingSummary
	err = q.runner.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		// one extra row tells whether another page exists
		found, ferr := q.store.ListByMember(ctx, db, memberID, cursor, limit+1)
		rows = found
		return ferr
	})
	if err != nil {
		return nil, err
	}

	page := &BookingPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := page.Items[limit-1]
		page.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	if page.Items == nil {
		page.Items = []BookingSummary{}
	}
	return page, nil
}

func (q *bookingQueriesImpl) read(ctx context.Context, find func(ctx context.Context, db sqlc.DBTX) (*ReservationView, error)) (*ReservationView, error) {
	var view *ReservationView
	err := q.runner.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := find(ctx, db)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}
