package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            int64         `json:"id"`
	Locator       string        `json:"locator"`
	MemberID      *uuid.UUID    `json:"member_id,omitempty"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Gender        *string       `json:"gender,omitempty"`
	Nationality   *string       `json:"nationality,omitempty"`
	PassportNo    *string       `json:"passport_no,omitempty"`
	ContactEmail  *string       `json:"contact_email,omitempty"`
	ContactPhone  *string       `json:"contact_phone,omitempty"`
	CabinClass    string        `json:"cabin_class"`
	Currency      string        `json:"currency"`
	TotalAmount   int64         `json:"total_amount"`
	PaymentStatus string        `json:"payment_status"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Segments      []SegmentView `json:"segments"`
}

// BookingSummary is one row of a member's booking list.
type BookingSummary struct {
	ID          int64     `json:"id"`
	Locator     string    `json:"locator"`
	Status      string    `json:"status"`
	CabinClass  string    `json:"cabin_class"`
	Currency    string    `json:"currency"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingPage struct {
	Items      []BookingSummary `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

type SegmentView struct {
	ID       int64        `json:"id"`
	TripType *string      `json:"trip_type,omitempty"`
	Flight   FlightView   `json:"flight"`
	Seat     *SeatView    `json:"seat,omitempty"`
	Meal     *MealView    `json:"meal,omitempty"`
	Baggage  *BaggageView `json:"baggage,omitempty"`
}

type FlightView struct {
	ID              int64     `json:"id"`
	FlightNumber    string    `json:"flight_number"`
	FlightDate      time.Time `json:"flight_date"`
	OriginIata      string    `json:"origin_iata"`
	DestinationIata string    `json:"destination_iata"`
	DepTimeUtc      time.Time `json:"dep_time_utc"`
	ArrTimeUtc      time.Time `json:"arr_time_utc"`
	Status          string    `json:"status"`
}

type SeatView struct {
	ID          int64  `json:"id"`
	FlightID    int64  `json:"flight_id"`
	SeatNumber  string `json:"seat_number"`
	CabinClass  string `json:"cabin_class"`
	IsAvailable bool   `json:"is_available"`
}

type MealView struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type BaggageView struct {
	ID       int64 `json:"id"`
	WeightKg int32 `json:"weight_kg"`
	Price    int64 `json:"price"`
}
