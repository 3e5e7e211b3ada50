package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type SegmentInput struct {
	FlightID  int64
	TripType  *string
	SeatID    *int64
	MealID    *int64
	BaggageID *int64
}

// Segment is one flight leg of a booking with its optional seat and add-ons.
type Segment struct {
	flightID  int64
	tripType  *TripType
	seatID    *int64
	mealID    *int64
	baggageID *int64
}

func NewSegment(in SegmentInput) (Segment, error) {
	if in.FlightID <= 0 || !positiveOrNil(in.SeatID) || !positiveOrNil(in.MealID) || !positiveOrNil(in.BaggageID) {
		return Segment{}, ErrInvalidReference
	}
	seg := Segment{
		flightID:  in.FlightID,
		seatID:    in.SeatID,
		mealID:    in.MealID,
		baggageID: in.BaggageID,
	}
	if in.TripType != nil {
		tt, err := ParseTripType(*in.TripType)
		if err != nil {
			return Segment{}, err
		}
		seg.tripType = &tt
	}
	return seg, nil
}

func (s Segment) FlightID() int64     { return s.flightID }
func (s Segment) TripType() *TripType { return s.tripType }
func (s Segment) SeatID() *int64      { return s.seatID }
func (s Segment) MealID() *int64      { return s.mealID }
func (s Segment) BaggageID() *int64   { return s.baggageID }

type DraftInput struct {
	MemberID      *uuid.UUID
	FirstName     string
	LastName      string
	Gender        *string
	Nationality   *string
	PassportNo    *string
	ContactEmail  *string
	ContactPhone  *string
	CabinClass    string
	Currency      string
	TotalAmount   int64
	PaymentStatus string
	Segments      []SegmentInput
}

// Draft is a validated booking request that has not been given a locator yet.
type Draft struct {
	memberID      *uuid.UUID
	passenger     Passenger
	contact       Contact
	cabinClass    string
	fare          Fare
	paymentStatus string
	segments      []Segment
}

func NewDraft(in DraftInput) (*Draft, error) {
	passenger, err := NewPassenger(in.FirstName, in.LastName, in.Gender, in.Nationality, in.PassportNo)
	if err != nil {
		return nil, err
	}
	contact, err := NewContact(in.ContactEmail, in.ContactPhone)
	if err != nil {
		return nil, err
	}
	fare, err := NewFare(in.Currency, in.TotalAmount)
	if err != nil {
		return nil, err
	}

	cabin := strings.TrimSpace(in.CabinClass)
	if cabin == "" {
		return nil, ErrEmptyCabinClass
	}
	payment := strings.TrimSpace(in.PaymentStatus)
	if payment == "" {
		return nil, ErrEmptyPaymentStatus
	}
	if utf8.RuneCountInString(cabin) > MaxShortField || utf8.RuneCountInString(payment) > MaxShortField {
		return nil, ErrFieldTooLong
	}

	if len(in.Segments) == 0 {
		return nil, ErrNoSegments
	}
	if len(in.Segments) > MaxSegmentsPerPNR {
		return nil, ErrTooManySegments
	}
	segments := make([]Segment, 0, len(in.Segments))
	for _, si := range in.Segments {
		seg, err := NewSegment(si)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}

	return &Draft{
		memberID:      in.MemberID,
		passenger:     passenger,
		contact:       contact,
		cabinClass:    cabin,
		fare:          fare,
		paymentStatus: payment,
		segments:      segments,
	}, nil
}

func (d *Draft) Segments() []Segment { return d.segments }

// FlightIDs returns the distinct flights in segment order.
func (d *Draft) FlightIDs() []int64 {
	seen := make(map[int64]struct{}, len(d.segments))
	ids := make([]int64, 0, len(d.segments))
	for _, s := range d.segments {
		if _, ok := seen[s.flightID]; ok {
			continue
		}
		seen[s.flightID] = struct{}{}
		ids = append(ids, s.flightID)
	}
	return ids
}

// Confirm binds a reserved locator to the draft.
func (d *Draft) Confirm(locator Locator, now time.Time) *Booking {
	return &Booking{
		locator:       locator,
		memberID:      d.memberID,
		passenger:     d.passenger,
		contact:       d.contact,
		cabinClass:    d.cabinClass,
		fare:          d.fare,
		paymentStatus: d.paymentStatus,
		status:        StatusConfirmed,
		segments:      d.segments,
		createdAt:     now,
		updatedAt:     now,
	}
}

type Booking struct {
	locator       Locator
	memberID      *uuid.UUID
	passenger     Passenger
	contact       Contact
	cabinClass    string
	fare          Fare
	paymentStatus string
	status        Status
	segments      []Segment
	createdAt     time.Time
	updatedAt     time.Time
}

func (b *Booking) Locator() Locator      { return b.locator }
func (b *Booking) MemberID() *uuid.UUID  { return b.memberID }
func (b *Booking) Passenger() Passenger  { return b.passenger }
func (b *Booking) Contact() Contact      { return b.contact }
func (b *Booking) CabinClass() string    { return b.cabinClass }
func (b *Booking) Fare() Fare            { return b.fare }
func (b *Booking) PaymentStatus() string { return b.paymentStatus }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Segments() []Segment   { return b.segments }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

// EnsureCancellable rejects a second cancellation of the same booking.
func EnsureCancellable(status Status) error {
	if status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	return nil
}

func positiveOrNil(id *int64) bool {
	return id == nil || *id > 0
}
