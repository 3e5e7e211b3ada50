package shared

import (
	"context"
	"time"

	"stelwing-booking/internal/domain/booking"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Seats() SeatRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	FlightByID(ctx context.Context, id int64) (*FlightSnapshot, error)
	SeatByID(ctx context.Context, id int64) (*booking.SeatState, error)
	MealByID(ctx context.Context, id int64) (*MealSnapshot, error)
	BaggageByID(ctx context.Context, id int64) (*BaggageSnapshot, error)
	LocatorExists(ctx context.Context, locator booking.Locator) (bool, error)
	// BookingForCancel locks the booking row until the surrounding tx ends.
	BookingForCancel(ctx context.Context, locator booking.Locator) (*BookingSnapshot, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

// BookingRepository is the reservation writer. It performs no validation and
// never touches seat inventory.
type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	MarkCancelled(ctx context.Context, tx sqlc.DBTX, bookingID int64, at time.Time) error
}

// SeatRepository flips the availability flag with guarded updates only.
type SeatRepository interface {
	Claim(ctx context.Context, tx sqlc.DBTX, seatID int64) error
	Release(ctx context.Context, tx sqlc.DBTX, seatID int64) error
}

type IdempotencyRepository interface {
	Save(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, requestHash string, bookingID int64, expiresAt time.Time) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, runAt time.Time, lastError string) error
}
