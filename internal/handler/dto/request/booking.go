package request

import (
	"stelwing-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingDetailRequest struct {
	FlightID  int64   `json:"flightId" binding:"required,gt=0"`
	TripType  *string `json:"tripType,omitempty" binding:"omitempty,oneof=outbound inbound"`
	SeatID    *int64  `json:"seatId,omitempty" binding:"omitempty,gt=0"`
	MealID    *int64  `json:"mealId,omitempty" binding:"omitempty,gt=0"`
	BaggageID *int64  `json:"baggageId,omitempty" binding:"omitempty,gt=0"`
}

type CreateBookingRequest struct {
	FirstName     string                 `json:"firstName" binding:"required,max=100"`
	LastName      string                 `json:"lastName" binding:"required,max=100"`
	Gender        *string                `json:"gender,omitempty" binding:"omitempty,max=32"`
	Nationality   *string                `json:"nationality,omitempty" binding:"omitempty,len=2,alpha"`
	PassportNo    *string                `json:"passportNo,omitempty" binding:"omitempty,max=32"`
	CabinClass    string                 `json:"cabinClass" binding:"required,max=32"`
	Currency      string                 `json:"currency" binding:"required,len=3,alpha"`
	TotalAmount   *int64                 `json:"totalAmount" binding:"required,gte=0"`
	PaymentStatus string                 `json:"paymentStatus" binding:"required,max=32"`
	ContactEmail  *string                `json:"contactEmail,omitempty" binding:"omitempty,email,max=255"`
	ContactPhone  *string                `json:"contactPhone,omitempty" binding:"omitempty,max=32"`
	Details       []BookingDetailRequest `json:"details" binding:"required,min=1,max=8,dive"`
}

func (r CreateBookingRequest) ToDomain(memberID *uuid.UUID) booking.DraftInput {
	var amount int64
	if r.TotalAmount != nil {
		amount = *r.TotalAmount
	}

	segments := make([]booking.SegmentInput, len(r.Details))
	for i, d := range r.Details {
		segments[i] = booking.SegmentInput{
			FlightID:  d.FlightID,
			TripType:  d.TripType,
			SeatID:    d.SeatID,
			MealID:    d.MealID,
			BaggageID: d.BaggageID,
		}
	}

	return booking.DraftInput{
		MemberID:      memberID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Gender:        r.Gender,
		Nationality:   r.Nationality,
		PassportNo:    r.PassportNo,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
		CabinClass:    r.CabinClass,
		Currency:      r.Currency,
		TotalAmount:   amount,
		PaymentStatus: r.PaymentStatus,
		Segments:      segments,
	}
}
