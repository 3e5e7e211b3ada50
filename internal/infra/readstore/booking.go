package readstore

import (
	"context"

	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/pgconv"
	"stelwing-booking/internal/usecase/queries"
	"stelwing-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, bookingID int64) (sqlc.Bookings, error)
	GetBookingByPNR(ctx context.Context, db sqlc.DBTX, pnr string) (sqlc.Bookings, error)
	GetBookingByPNRForUpdate(ctx context.Context, db sqlc.DBTX, pnr string) (sqlc.GetBookingByPNRForUpdateRow, error)
	ListBookingSegments(ctx context.Context, db sqlc.DBTX, bookingID int64) ([]sqlc.ListBookingSegmentsRow, error)
	ListBookingSeatIDs(ctx context.Context, db sqlc.DBTX, bookingID int64) ([]int64, error)
	ListBookingsByMember(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByMemberParams) ([]sqlc.ListBookingsByMemberRow, error)
	PNRExists(ctx context.Context, db sqlc.DBTX, pnr string) (bool, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
}

func NewBookingReadStore(queries BookingViewQueries) *BookingReadStore {
	return &BookingReadStore{queries: queries}
}

func (r *BookingReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetBookingByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return r.withSegments(ctx, db, row)
}

func (r *BookingReadStore) FindByLocator(ctx context.Context, db sqlc.DBTX, locator string) (*queries.ReservationView, error) {
	row, err := r.queries.GetBookingByPNR(ctx, db, locator)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by locator", err)
	}
	return r.withSegments(ctx, db, row)
}

// LocatorExists runs on the commit tx so a concurrently committed locator is seen.
func (r *BookingReadStore) LocatorExists(ctx context.Context, db sqlc.DBTX, locator string) (bool, error) {
	exists, err := r.queries.PNRExists(ctx, db, locator)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check locator", err)
	}
	return exists, nil
}

// LockForCancel takes a row lock on the booking and lists the seats it holds.
func (r *BookingReadStore) LockForCancel(ctx context.Context, db sqlc.DBTX, locator string) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByPNRForUpdate(ctx, db, locator)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	seatIDs, err := r.queries.ListBookingSeatIDs(ctx, db, row.BookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking seats", err)
	}

	return &shared.BookingSnapshot{
		ID:       row.BookingID,
		Locator:  row.Pnr,
		MemberID: pgconv.UUIDPtrFromPgtype(row.MemberID),
		Status:   row.Status,
		SeatIDs:  seatIDs,
	}, nil
}

func (r *BookingReadStore) withSegments(ctx context.Context, db sqlc.DBTX, row sqlc.Bookings) (*queries.ReservationView, error) {
	segs, err := r.queries.ListBookingSegments(ctx, db, row.BookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking segments", err)
	}

	view := rowToReservationView(row)
	view.Segments = make([]queries.SegmentView, len(segs))
	for i, s := range segs {
		view.Segments[i] = rowToSegmentView(s)
	}
	return view, nil
}

func rowToReservationView(row sqlc.Bookings) *queries.ReservationView {
	return &queries.ReservationView{
		ID:            row.BookingID,
		Locator:       row.Pnr,
		MemberID:      pgconv.UUIDPtrFromPgtype(row.MemberID),
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Gender:        pgconv.StringPtrFromPgtype(row.Gender),
		Nationality:   pgconv.StringPtrFromPgtype(row.Nationality),
		PassportNo:    pgconv.StringPtrFromPgtype(row.PassportNo),
		ContactEmail:  pgconv.StringPtrFromPgtype(row.ContactEmail),
		ContactPhone:  pgconv.StringPtrFromPgtype(row.ContactPhone),
		CabinClass:    row.CabinClass,
		Currency:      row.Currency,
		TotalAmount:   row.TotalAmount,
		PaymentStatus: row.PaymentStatus,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func rowToSegmentView(row sqlc.ListBookingSegmentsRow) queries.SegmentView {
	seg := queries.SegmentView{
		ID:       row.DetailID,
		TripType: pgconv.StringPtrFromPgtype(row.TripType),
		Flight: queries.FlightView{
			ID:              row.FlightID,
			FlightNumber:    row.FlightNumber,
			FlightDate:      pgconv.DateFromPgtype(row.FlightDate),
			OriginIata:      row.OriginIata,
			DestinationIata: row.DestinationIata,
			DepTimeUtc:      pgconv.TimeFromPgtype(row.DepTimeUtc),
			ArrTimeUtc:      pgconv.TimeFromPgtype(row.ArrTimeUtc),
			Status:          row.FlightStatus,
		},
	}

	if row.SeatID.Valid {
		seg.Seat = &queries.SeatView{
			ID:          row.SeatID.Int64,
			FlightID:    row.FlightID,
			SeatNumber:  row.SeatNumber.String,
			CabinClass:  row.SeatCabinClass.String,
			IsAvailable: row.SeatIsAvailable.Bool,
		}
	}
	if row.MealID.Valid {
		seg.Meal = &queries.MealView{
			ID:    row.MealID.Int64,
			Code:  row.MealCode.String,
			Name:  row.MealName.String,
			Price: row.MealPrice.Int64,
		}
	}
	if row.BaggageID.Valid {
		seg.Baggage = &queries.BaggageView{
			ID:       row.BaggageID.Int64,
			WeightKg: row.WeightKg.Int32,
			Price:    row.BaggagePrice.Int64,
		}
	}
	return seg
}

func (r *BookingReadStore) ListByMember(ctx context.Context, db sqlc.DBTX, memberID uuid.UUID, after *queries.BookingCursor, limit int) ([]queries.BookingSummary, error) {
	params := sqlc.ListBookingsByMemberParams{
		MemberID: pgconv.UUIDToPgtype(memberID),
		RowLimit: int32(limit),
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.Int64PtrToPgtype(&after.ID)
	}

	rows, err := r.queries.ListBookingsByMember(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member bookings", err)
	}

	out := make([]queries.BookingSummary, len(rows))
	for i, row := range rows {
		out[i] = queries.BookingSummary{
			ID:          row.BookingID,
			Locator:     row.Pnr,
			Status:      row.Status,
			CabinClass:  row.CabinClass,
			Currency:    row.Currency,
			TotalAmount: row.TotalAmount,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
