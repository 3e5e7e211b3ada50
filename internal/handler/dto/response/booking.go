package response

import (
	"time"

	"stelwing-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID            int64                   `json:"id"`
	PNR           string                  `json:"pnr"`
	MemberID      *string                 `json:"memberId,omitempty"`
	FirstName     string                  `json:"firstName"`
	LastName      string                  `json:"lastName"`
	Gender        *string                 `json:"gender,omitempty"`
	Nationality   *string                 `json:"nationality,omitempty"`
	PassportNo    *string                 `json:"passportNo,omitempty"`
	ContactEmail  *string                 `json:"contactEmail,omitempty"`
	ContactPhone  *string                 `json:"contactPhone,omitempty"`
	CabinClass    string                  `json:"cabinClass"`
	Currency      string                  `json:"currency"`
	TotalAmount   int64                   `json:"totalAmount"`
	PaymentStatus string                  `json:"paymentStatus"`
	Status        string                  `json:"status"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
	Details       []BookingDetailResponse `json:"details"`
}

// BookingCreatedResponse acknowledges a committed booking whose full graph
// could not be loaded; clients follow Location for the details.
type BookingCreatedResponse struct {
	ID     int64  `json:"id"`
	PNR    string `json:"pnr"`
	Status string `json:"status"`
}

type BookingDetailResponse struct {
	ID       int64            `json:"id"`
	TripType *string          `json:"tripType,omitempty"`
	Flight   FlightResponse   `json:"flight"`
	Seat     *SeatResponse    `json:"seat,omitempty"`
	Meal     *MealResponse    `json:"meal,omitempty"`
	Baggage  *BaggageResponse `json:"baggage,omitempty"`
}

type FlightResponse struct {
	ID              int64     `json:"id"`
	FlightNumber    string    `json:"flightNumber"`
	FlightDate      string    `json:"flightDate"`
	OriginIata      string    `json:"originIata"`
	DestinationIata string    `json:"destinationIata"`
	DepTimeUtc      time.Time `json:"depTimeUtc"`
	ArrTimeUtc      time.Time `json:"arrTimeUtc"`
	Status          string    `json:"status"`
}

type SeatResponse struct {
	ID          int64  `json:"id"`
	FlightID    int64  `json:"flightId"`
	SeatNumber  string `json:"seatNumber"`
	CabinClass  string `json:"cabinClass"`
	IsAvailable bool   `json:"isAvailable"`
}

type MealResponse struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type BaggageResponse struct {
	ID       int64 `json:"id"`
	WeightKg int32 `json:"weightKg"`
	Price    int64 `json:"price"`
}

func FromReservationView(v *queries.ReservationView) *BookingResponse {
	res := &BookingResponse{
		ID:            v.ID,
		PNR:           v.Locator,
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		Gender:        v.Gender,
		Nationality:   v.Nationality,
		PassportNo:    v.PassportNo,
		ContactEmail:  v.ContactEmail,
		ContactPhone:  v.ContactPhone,
		CabinClass:    v.CabinClass,
		Currency:      v.Currency,
		TotalAmount:   v.TotalAmount,
		PaymentStatus: v.PaymentStatus,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
		Details:       make([]BookingDetailResponse, len(v.Segments)),
	}
	if v.MemberID != nil {
		id := v.MemberID.String()
		res.MemberID = &id
	}

	for i, s := range v.Segments {
		d := BookingDetailResponse{
			ID:       s.ID,
			TripType: s.TripType,
			Flight:   fromFlightView(s.Flight),
		}
		if s.Seat != nil {
			seat := FromSeatView(*s.Seat)
			d.Seat = &seat
		}
		if s.Meal != nil {
			meal := FromMealView(*s.Meal)
			d.Meal = &meal
		}
		if s.Baggage != nil {
			bag := FromBaggageView(*s.Baggage)
			d.Baggage = &bag
		}
		res.Details[i] = d
	}
	return res
}

func fromFlightView(f queries.FlightView) FlightResponse {
	return FlightResponse{
		ID:              f.ID,
		FlightNumber:    f.FlightNumber,
		FlightDate:      f.FlightDate.Format(time.DateOnly),
		OriginIata:      f.OriginIata,
		DestinationIata: f.DestinationIata,
		DepTimeUtc:      f.DepTimeUtc,
		ArrTimeUtc:      f.ArrTimeUtc,
		Status:          f.Status,
	}
}

func FromSeatView(s queries.SeatView) SeatResponse {
	return SeatResponse{
		ID:          s.ID,
		FlightID:    s.FlightID,
		SeatNumber:  s.SeatNumber,
		CabinClass:  s.CabinClass,
		IsAvailable: s.IsAvailable,
	}
}

func FromMealView(m queries.MealView) MealResponse {
	return MealResponse{ID: m.ID, Code: m.Code, Name: m.Name, Price: m.Price}
}

func FromBaggageView(b queries.BaggageView) BaggageResponse {
	return BaggageResponse{ID: b.ID, WeightKg: b.WeightKg, Price: b.Price}
}

func FromSeatViews(items []queries.SeatView) []SeatResponse {
	res := make([]SeatResponse, len(items))
	for i, it := range items {
		res[i] = FromSeatView(it)
	}
	return res
}

func FromMealViews(items []queries.MealView) []MealResponse {
	res := make([]MealResponse, len(items))
	for i, it := range items {
		res[i] = FromMealView(it)
	}
	return res
}

func FromBaggageViews(items []queries.BaggageView) []BaggageResponse {
	res := make([]BaggageResponse, len(items))
	for i, it := range items {
		res[i] = FromBaggageView(it)
	}
	return res
}

type BookingSummaryResponse struct {
	ID          int64     `json:"id"`
	PNR         string    `json:"pnr"`
	Status      string    `json:"status"`
	CabinClass  string    `json:"cabinClass"`
	Currency    string    `json:"currency"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingPageResponse struct {
	Items      []BookingSummaryResponse `json:"items"`
	NextCursor *string                  `json:"nextCursor,omitempty"`
}

func FromBookingPage(p *queries.BookingPage) BookingPageResponse {
	res := BookingPageResponse{Items: make([]BookingSummaryResponse, len(p.Items))}
	for i, b := range p.Items {
		res.Items[i] = BookingSummaryResponse{
			ID:          b.ID,
			PNR:         b.Locator,
			Status:      b.Status,
			CabinClass:  b.CabinClass,
			Currency:    b.Currency,
			TotalAmount: b.TotalAmount,
			CreatedAt:   b.CreatedAt,
		}
	}
	if p.NextCursor != "" {
		res.NextCursor = &p.NextCursor
	}
	return res
}
