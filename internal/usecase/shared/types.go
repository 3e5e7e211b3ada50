package shared

import (
	"time"

	"github.com/google/uuid"
)

type FlightSnapshot struct {
	ID           int64
	FlightNumber string
	Status       string
}

type MealSnapshot struct {
	ID   int64
	Code string
}

type BaggageSnapshot struct {
	ID       int64
	WeightKg int32
}

// Minimal snapshot for the cancellation path
type BookingSnapshot struct {
	ID       int64
	Locator  string
	MemberID *uuid.UUID
	Status   string
	SeatIDs  []int64
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	RequestHash string
	BookingID   int64
	ExpiresAt   time.Time
}

func (r *IdempotencyRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}
