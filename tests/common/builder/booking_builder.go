//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"stelwing-booking/internal/domain/booking"
	reqdto "stelwing-booking/internal/handler/dto/request"
	"stelwing-booking/internal/pkg/ptr"
	"stelwing-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SegmentBuilder struct {
	FlightID  int64
	TripType  *string
	SeatID    *int64
	MealID    *int64
	BaggageID *int64
}

func NewSegment(flightID int64) *SegmentBuilder {
	return &SegmentBuilder{FlightID: flightID, TripType: ptr.Of("outbound")}
}

func (s *SegmentBuilder) Seat(id int64) *SegmentBuilder {
	s.SeatID = ptr.Of(id)
	return s
}

func (s *SegmentBuilder) Meal(id int64) *SegmentBuilder {
	s.MealID = ptr.Of(id)
	return s
}

func (s *SegmentBuilder) Baggage(id int64) *SegmentBuilder {
	s.BaggageID = ptr.Of(id)
	return s
}

func (s *SegmentBuilder) Inbound() *SegmentBuilder {
	s.TripType = ptr.Of("inbound")
	return s
}

func (s *SegmentBuilder) BuildDTO() reqdto.BookingDetailRequest {
	return reqdto.BookingDetailRequest{
		FlightID:  s.FlightID,
		TripType:  s.TripType,
		SeatID:    s.SeatID,
		MealID:    s.MealID,
		BaggageID: s.BaggageID,
	}
}

type BookingBuilder struct {
	FirstName     string
	LastName      string
	Gender        *string
	Nationality   *string
	PassportNo    *string
	CabinClass    string
	Currency      string
	TotalAmount   int64
	PaymentStatus string
	ContactEmail  *string
	ContactPhone  *string
	Segments      []*SegmentBuilder
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		FirstName:     "Mei",
		LastName:      "Lin",
		Gender:        ptr.Of("female"),
		Nationality:   ptr.Of("TW"),
		PassportNo:    ptr.Of("P1234567"),
		CabinClass:    "economy",
		Currency:      "TWD",
		TotalAmount:   12800,
		PaymentStatus: "paid",
		ContactEmail:  ptr.Of("mei.lin@example.com"),
		ContactPhone:  ptr.Of("+886912345678"),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Segment(s *SegmentBuilder) *BookingBuilder {
	b.Segments = append(b.Segments, s)
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	details := make([]reqdto.BookingDetailRequest, len(b.Segments))
	for i, s := range b.Segments {
		details[i] = s.BuildDTO()
	}
	return reqdto.CreateBookingRequest{
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Gender:        b.Gender,
		Nationality:   b.Nationality,
		PassportNo:    b.PassportNo,
		CabinClass:    b.CabinClass,
		Currency:      b.Currency,
		TotalAmount:   ptr.Of(b.TotalAmount),
		PaymentStatus: b.PaymentStatus,
		ContactEmail:  b.ContactEmail,
		ContactPhone:  b.ContactPhone,
		Details:       details,
	}
}

func (b *BookingBuilder) BuildDraft(memberID *uuid.UUID) (*booking.Draft, error) {
	return booking.NewDraft(b.BuildDTO().ToDomain(memberID))
}

// BuildDomain confirms the draft under the given locator.
func (b *BookingBuilder) BuildDomain(locator string, now time.Time) (*booking.Booking, error) {
	draft, err := b.BuildDraft(nil)
	if err != nil {
		return nil, err
	}
	return draft.Confirm(booking.Locator(locator), now), nil
}

// BuildView renders the builder as a persisted confirmed booking. Segment ids
// and flight details are synthesized from the segment order.
func (b *BookingBuilder) BuildView(id int64, locator string, memberID *uuid.UUID, now time.Time) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:            id,
		Locator:       locator,
		MemberID:      memberID,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Gender:        b.Gender,
		Nationality:   b.Nationality,
		PassportNo:    b.PassportNo,
		ContactEmail:  b.ContactEmail,
		ContactPhone:  b.ContactPhone,
		CabinClass:    b.CabinClass,
		Currency:      b.Currency,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
		Status:        booking.StatusConfirmed.String(),
		CreatedAt:     now,
		UpdatedAt:     now,
		Segments:      make([]queries.SegmentView, len(b.Segments)),
	}
	for i, s := range b.Segments {
		seg := queries.SegmentView{
			ID:       id*10 + int64(i),
			TripType: s.TripType,
			Flight: queries.FlightView{
				ID:           s.FlightID,
				FlightNumber: "SW" + strconv.FormatInt(100+s.FlightID, 10),
				FlightDate:   now.AddDate(0, 1, i).Truncate(24 * time.Hour),
				Status:       "scheduled",
			},
		}
		if s.SeatID != nil {
			seg.Seat = &queries.SeatView{ID: *s.SeatID, FlightID: s.FlightID, CabinClass: b.CabinClass}
		}
		if s.MealID != nil {
			seg.Meal = &queries.MealView{ID: *s.MealID}
		}
		if s.BaggageID != nil {
			seg.Baggage = &queries.BaggageView{ID: *s.BaggageID}
		}
		view.Segments[i] = seg
	}
	return view
}
