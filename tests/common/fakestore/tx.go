//go:build unit

package fakestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type tx struct {
	store *Store
	st    *state
}

func (t *tx) Bookings() shared.BookingRepository { return t }
func (t *tx) Seats() shared.SeatRepository { return seatRepo{t} }
func (t *tx) Idempotency() shared.IdempotencyRepository { return idemRepo{t} }
func (t *tx) Notifications() shared.NotificationRepository { return jobRepo{t} }
func (t *tx) Reads() shared.CommandReads { return &reads{st: t.st} }
func (t *tx) DB() sqlc.DBTX { return nil }

// shared.BookingRepository

func (t *tx) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (int64, error) {
	if err := t.store.injected(OpCreateBooking, "failed to create booking"); err != nil {
		return 0, err
	}
	if _, taken := t.st.pnrs[b.Locator().String()]; taken {
		return 0, infra.WrapRepoErr("failed to create booking", UniqueViolation("bookings_pnr_key"))
	}

	id := t.st.id()
	details := make([]int64, len(b.Segments()))
	for i := range details {
		details[i] = t.st.id()
	}
	t.st.bookings[id] = storedBooking{
		id:        id,
		booking:   b,
		status:    b.Status().String(),
		updatedAt: b.UpdatedAt(),
		detailIDs: details,
	}
	t.st.pnrs[b.Locator().String()] = id
	return id, nil
}

func (t *tx) MarkCancelled(_ context.Context, _ sqlc.DBTX, bookingID int64, at time.Time) error {
	if err := t.store.injected(OpMarkCancelled, "failed to cancel booking"); err != nil {
		return err
	}
	b, ok := t.st.bookings[bookingID]
	if !ok || b.status != booking.StatusConfirmed.String() {
		return infra.WrapRepoErr(fmt.Sprintf("booking %d is not confirmed", bookingID), nil, infra.KindConflict)
	}
	b.status = booking.StatusCancelled.String()
	b.updatedAt = at
	t.st.bookings[bookingID] = b
	return nil
}

type seatRepo struct{ t *tx }

func (r seatRepo) Claim(_ context.Context, _ sqlc.DBTX, seatID int64) error {
	if err := r.t.store.injected(OpClaimSeat, "failed to claim seat"); err != nil {
		return err
	}
	seat, ok := r.t.st.seats[seatID]
	if !ok || !seat.IsAvailable {
		return infra.WrapRepoErr(fmt.Sprintf("seat %d is not available", seatID), nil, infra.KindConflict)
	}
	seat.IsAvailable = false
	r.t.st.seats[seatID] = seat
	return nil
}

func (r seatRepo) Release(_ context.Context, _ sqlc.DBTX, seatID int64) error {
	if err := r.t.store.injected(OpReleaseSeat, "failed to release seat"); err != nil {
		return err
	}
	seat, ok := r.t.st.seats[seatID]
	if !ok || seat.IsAvailable {
		return infra.WrapRepoErr(fmt.Sprintf("seat %d is not claimed", seatID), nil, infra.KindConflict)
	}
	seat.IsAvailable = true
	r.t.st.seats[seatID] = seat
	return nil
}

type idemRepo struct{ t *tx }

func (r idemRepo) Save(_ context.Context, _ sqlc.DBTX, key uuid.UUID, requestHash string, bookingID int64, expiresAt time.Time) error {
	if err := r.t.store.injected(OpSaveIdempotency, "failed to save idempotency key"); err != nil {
		return err
	}
	if _, ok := r.t.st.idem[key]; ok {
		return infra.WrapRepoErr("failed to save idempotency key", UniqueViolation("idempotency_keys_pkey"))
	}
	r.t.st.idem[key] = shared.IdempotencyRecord{Key: key, RequestHash: requestHash, BookingID: bookingID, ExpiresAt: expiresAt}
	return nil
}

func (r idemRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, key uuid.UUID) (int64, error) {
	rec, ok := r.t.st.idem[key]
	if !ok || !rec.Expired(r.t.store.clock.Now()) {
		return 0, nil
	}
	delete(r.t.st.idem, key)
	return 1, nil
}

type jobRepo struct{ t *tx }

func (r jobRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if err := r.t.store.injected(OpCreateJob, "failed to create notification job"); err != nil {
		return err
	}
	r.t.st.jobs = append(r.t.st.jobs, Job{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
		Status:  shared.NotificationStatusQueued,
	})
	return nil
}

func (r jobRepo) ClaimDue(_ context.Context, _ sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	if err := r.t.store.injected(OpClaimDue, "failed to claim notification jobs"); err != nil {
		return nil, err
	}
	due := make([]Job, 0)
	for _, j := range r.t.st.jobs {
		if j.Status == shared.NotificationStatusQueued && !j.RunAt.After(now) {
			due = append(due, j)
		}
	}
	sort.SliceStable(due, func(a, b int) bool { return due[a].RunAt.Before(due[b].RunAt) })
	if int32(len(due)) > limit {
		due = due[:limit]
	}

	out := make([]shared.NotificationJob, len(due))
	for i, j := range due {
		out[i] = shared.NotificationJob{ID: j.ID, Kind: j.Kind, Topic: j.Topic, Payload: j.Payload, Attempts: j.Attempts}
	}
	return out, nil
}

func (r jobRepo) MarkSent(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID) error {
	return r.update(jobID, func(j *Job) {
		j.Status = shared.NotificationStatusSent
		j.Attempts++
		j.LastError = ""
	})
}

func (r jobRepo) Reschedule(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, status string, runAt time.Time, lastError string) error {
	return r.update(jobID, func(j *Job) {
		j.Status = status
		j.Attempts++
		j.RunAt = runAt
		j.LastError = lastError
	})
}

func (r jobRepo) update(id uuid.UUID, fn func(*Job)) error {
	for i := range r.t.st.jobs {
		if r.t.st.jobs[i].ID == id {
			fn(&r.t.st.jobs[i])
			return nil
		}
	}
	return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
}

// shared.CommandReads over one state

type reads struct {
	st *state
}

func notFound(what string, id any) error {
	return infra.WrapRepoErr(fmt.Sprintf("%s %v not found", what, id), nil, infra.KindNotFound)
}

func (r *reads) FlightByID(_ context.Context, id int64) (*shared.FlightSnapshot, error) {
	f, ok := r.st.flights[id]
	if !ok {
		return nil, notFound("flight", id)
	}
	return &shared.FlightSnapshot{ID: f.ID, FlightNumber: f.FlightNumber, Status: f.Status}, nil
}

func (r *reads) SeatByID(_ context.Context, id int64) (*booking.SeatState, error) {
	s, ok := r.st.seats[id]
	if !ok {
		return nil, notFound("seat", id)
	}
	return &booking.SeatState{ID: s.ID, FlightID: s.FlightID, Available: s.IsAvailable}, nil
}

func (r *reads) MealByID(_ context.Context, id int64) (*shared.MealSnapshot, error) {
	m, ok := r.st.meals[id]
	if !ok {
		return nil, notFound("meal", id)
	}
	return &shared.MealSnapshot{ID: m.ID, Code: m.Code}, nil
}

func (r *reads) BaggageByID(_ context.Context, id int64) (*shared.BaggageSnapshot, error) {
	b, ok := r.st.baggage[id]
	if !ok {
		return nil, notFound("baggage", id)
	}
	return &shared.BaggageSnapshot{ID: b.ID, WeightKg: b.WeightKg}, nil
}

func (r *reads) LocatorExists(_ context.Context, loc booking.Locator) (bool, error) {
	_, ok := r.st.pnrs[loc.String()]
	return ok, nil
}

func (r *reads) BookingForCancel(_ context.Context, loc booking.Locator) (*shared.BookingSnapshot, error) {
	id, ok := r.st.pnrs[loc.String()]
	b, found := r.st.bookings[id]
	if !ok || !found {
		return nil, notFound("booking", loc)
	}

	snap := &shared.BookingSnapshot{
		ID:       b.id,
		Locator:  loc.String(),
		MemberID: b.booking.MemberID(),
		Status:   b.status,
	}
	for _, seg := range b.booking.Segments() {
		if seg.SeatID() != nil {
			snap.SeatIDs = append(snap.SeatIDs, *seg.SeatID())
		}
	}
	return snap, nil
}

func (r *reads) IdempotencyByKey(_ context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idem[key]
	if !ok {
		return nil, notFound("idempotency key", key)
	}
	return &rec, nil
}
