package converter

import (
	"stelwing-booking/internal/domain/booking"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	p := b.Passenger()
	c := b.Contact()

	return sqlc.CreateBookingParams{
		Pnr:           b.Locator().String(),
		MemberID:      pgconv.UUIDPtrToPgtype(b.MemberID()),
		FirstName:     p.FirstName(),
		LastName:      p.LastName(),
		Gender:        pgconv.StringPtrToPgtype(p.Gender()),
		Nationality:   pgconv.StringPtrToPgtype(p.Nationality()),
		PassportNo:    pgconv.StringPtrToPgtype(p.PassportNo()),
		ContactEmail:  pgconv.StringPtrToPgtype(c.Email()),
		ContactPhone:  pgconv.StringPtrToPgtype(c.Phone()),
		CabinClass:    b.CabinClass(),
		Currency:      b.Fare().Currency(),
		TotalAmount:   b.Fare().Amount(),
		PaymentStatus: b.PaymentStatus(),
		Status:        b.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func SegmentToInfra(bookingID int64, s booking.Segment) sqlc.CreateBookingDetailParams {
	params := sqlc.CreateBookingDetailParams{
		BookingID: bookingID,
		FlightID:  s.FlightID(),
		SeatID:    pgconv.Int64PtrToPgtype(s.SeatID()),
		MealID:    pgconv.Int64PtrToPgtype(s.MealID()),
		BaggageID: pgconv.Int64PtrToPgtype(s.BaggageID()),
		TripType:  pgconv.StringerPtrToPgtype(s.TripType()),
	}
	return params
}
