//go:build unit

// Package fakestore is an in-memory shared.UnitOfWork. Transactions are
// serialized on one mutex and run against a copy of the committed state, so a
// failed transaction leaves nothing behind.
package fakestore

import (
	"context"
	"sort"
	"sync"
	"time"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/clock"
	"stelwing-booking/internal/usecase/queries"
	"stelwing-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Op string

const (
	OpCreateBooking   Op = "create_booking"
	OpClaimSeat       Op = "claim_seat"
	OpReleaseSeat     Op = "release_seat"
	OpSaveIdempotency Op = "save_idempotency"
	OpCreateJob       Op = "create_job"
	OpMarkCancelled   Op = "mark_cancelled"
	OpClaimDue        Op = "claim_due"
)

type storedBooking struct {
	id        int64
	booking   *booking.Booking
	status    string
	updatedAt time.Time
	detailIDs []int64
}

type Job struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Status    string
	Attempts  int32
	LastError string
}

type state struct {
	flights  map[int64]queries.FlightView
	seats    map[int64]queries.SeatView
	meals    map[int64]queries.MealView
	baggage  map[int64]queries.BaggageView
	bookings map[int64]storedBooking
	pnrs     map[string]int64
	idem     map[uuid.UUID]shared.IdempotencyRecord
	jobs     []Job
	nextID   int64
}

func (s *state) clone() *state {
	c := &state{
		flights:  make(map[int64]queries.FlightView, len(s.flights)),
		seats:    make(map[int64]queries.SeatView, len(s.seats)),
		meals:    make(map[int64]queries.MealView, len(s.meals)),
		baggage:  make(map[int64]queries.BaggageView, len(s.baggage)),
		bookings: make(map[int64]storedBooking, len(s.bookings)),
		pnrs:     make(map[string]int64, len(s.pnrs)),
		idem:     make(map[uuid.UUID]shared.IdempotencyRecord, len(s.idem)),
		jobs:     append([]Job(nil), s.jobs...),
		nextID:   s.nextID,
	}
	for k, v := range s.flights {
		c.flights[k] = v
	}
	for k, v := range s.seats {
		c.seats[k] = v
	}
	for k, v := range s.meals {
		c.meals[k] = v
	}
	for k, v := range s.baggage {
		c.baggage[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.pnrs {
		c.pnrs[k] = v
	}
	for k, v := range s.idem {
		c.idem[k] = v
	}
	return c
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

type fault struct {
	err   error
	times int
}

type Store struct {
	mu     sync.Mutex
	st     *state
	clock  clock.Clock
	faults map[Op]*fault
	txs    int
}

func New(clk clock.Clock) *Store {
	return &Store{
		st: &state{
			flights:  map[int64]queries.FlightView{},
			seats:    map[int64]queries.SeatView{},
			meals:    map[int64]queries.MealView{},
			baggage:  map[int64]queries.BaggageView{},
			bookings: map[int64]storedBooking{},
			pnrs:     map[string]int64{},
			idem:     map[uuid.UUID]shared.IdempotencyRecord{},
			nextID:   1000,
		},
		clock:  clk,
		faults: map[Op]*fault{},
	}
}

// FailOn makes the next `times` calls of op fail with err. A *pgconn.PgError
// is classified the same way the real repositories classify it.
func (s *Store) FailOn(op Op, err error, times int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = &fault{err: err, times: times}
}

// UniqueViolation builds the error PostgreSQL returns for constraint.
func UniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint, Message: "duplicate key value violates unique constraint"}
}

func (s *Store) injected(op Op, msg string) error {
	f, ok := s.faults[op]
	if !ok || f.times <= 0 {
		return nil
	}
	f.times--
	return infra.WrapRepoErr(msg, f.err)
}

// Seeding

func (s *Store) AddFlight(f queries.FlightView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.flights[f.ID] = f
}

func (s *Store) AddSeat(seat queries.SeatView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.seats[seat.ID] = seat
}

func (s *Store) AddMeal(m queries.MealView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.meals[m.ID] = m
}

func (s *Store) AddBaggage(b queries.BaggageView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.baggage[b.ID] = b
}

// TakeLocator records loc as used by an existing booking.
func (s *Store) TakeLocator(loc string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.pnrs[loc] = 0
}

func (s *Store) PutIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.idem[rec.Key] = rec
}

// Inspection

func (s *Store) Seat(id int64) queries.SeatView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.seats[id]
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.bookings)
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.st.jobs...)
}

func (s *Store) AddJob(j Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.jobs = append(s.st.jobs, j)
}

func (s *Store) Idempotency(key uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.st.idem[key]
	return rec, ok
}

// Transactions reports how many write transactions were started.
func (s *Store) Transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txs
}

// shared.UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs++

	t := &tx{store: s, st: s.st.clone()}
	if err := fn(ctx, t); err != nil {
		return err
	}
	s.st = t.st
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &committedReads{store: s}
}

// committedReads serves reads outside a transaction from committed state.
type committedReads struct {
	store *Store
}

func (r *committedReads) view(fn func(reads *reads) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(&reads{st: r.store.st})
}

func (r *committedReads) FlightByID(ctx context.Context, id int64) (out *shared.FlightSnapshot, err error) {
	err = r.view(func(rd *reads) error { out, err = rd.FlightByID(ctx, id); return err })
	return out, err
}

func (r *committedReads) SeatByID(ctx context.Context, id int64) (out *booking.SeatState, err error) {
	err = r.view(func(rd *reads) error { out, err = rd.SeatByID(ctx, id); return err })
	return out, err
}

func (r *committedReads) MealByID(ctx context.Context, id int64) (out *shared.MealSnapshot, err error) {
	err = r.view(func(rd *reads) error { out, err = rd.MealByID(ctx, id); return err })
	return out, err
}

func (r *committedReads) BaggageByID(ctx context.Context, id int64) (out *shared.BaggageSnapshot, err error) {
	err = r.view(func(rd *reads) error { out, err = rd.BaggageByID(ctx, id); return err })
	return out, err
}

func (r *committedReads) LocatorExists(ctx context.Context, loc booking.Locator) (out bool, err error) {
	err = r.view(func(rd *reads) error { out, err = rd.LocatorExists(ctx, loc); return err })
	return out, err
}

func (r *committedReads) BookingForCancel(ctx context.Context, loc booking.Locator) (out *shared.BookingSnapshot, err error) {
	err = r.view(func(rd *reads) error { out, err = rd.BookingForCancel(ctx, loc); return err })
	return out, err
}

func (r *committedReads) IdempotencyByKey(ctx context.Context, key uuid.UUID) (out *shared.IdempotencyRecord, err error) {
	err = r.view(func(rd *reads) error { out, err = rd.IdempotencyByKey(ctx, key); return err })
	return out, err
}

// queries.BookingViewStore

func (s *Store) FindByID(_ context.Context, _ sqlc.DBTX, id int64) (*queries.ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.st.view(b), nil
}

func (s *Store) FindByLocator(_ context.Context, _ sqlc.DBTX, locator string) (*queries.ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.st.pnrs[locator]
	b, found := s.st.bookings[id]
	if !ok || !found {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.st.view(b), nil
}

func (s *Store) ListByMember(_ context.Context, _ sqlc.DBTX, memberID uuid.UUID, after *queries.BookingCursor, limit int) ([]queries.BookingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []queries.BookingSummary
	for id, sb := range s.st.bookings {
		if m := sb.booking.MemberID(); m == nil || *m != memberID {
			continue
		}
		created := sb.booking.CreatedAt()
		if after != nil && !created.Before(after.CreatedAt) && !(created.Equal(after.CreatedAt) && id < after.ID) {
			continue
		}
		out = append(out, queries.BookingSummary{
			ID:          id,
			Locator:     sb.booking.Locator().String(),
			Status:      sb.status,
			CabinClass:  sb.booking.CabinClass(),
			Currency:    sb.booking.Fare().Currency(),
			TotalAmount: sb.booking.Fare().Amount(),
			CreatedAt:   created,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// queries.OptionStore

func (s *Store) SeatsByFlight(_ context.Context, flightID int64) ([]queries.SeatView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []queries.SeatView{}
	for _, seat := range s.st.seats {
		if seat.FlightID == flightID {
			out = append(out, seat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatNumber < out[j].SeatNumber })
	return out, nil
}

func (s *Store) Meals(context.Context) ([]queries.MealView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]queries.MealView, 0, len(s.st.meals))
	for _, m := range s.st.meals {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) Baggage(context.Context) ([]queries.BaggageView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]queries.BaggageView, 0, len(s.st.baggage))
	for _, b := range s.st.baggage {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st *state) view(sb storedBooking) *queries.ReservationView {
	b := sb.booking
	v := &queries.ReservationView{
		ID:            sb.id,
		Locator:       b.Locator().String(),
		MemberID:      b.MemberID(),
		FirstName:     b.Passenger().FirstName(),
		LastName:      b.Passenger().LastName(),
		Gender:        b.Passenger().Gender(),
		Nationality:   b.Passenger().Nationality(),
		PassportNo:    b.Passenger().PassportNo(),
		ContactEmail:  b.Contact().Email(),
		ContactPhone:  b.Contact().Phone(),
		CabinClass:    b.CabinClass(),
		Currency:      b.Fare().Currency(),
		TotalAmount:   b.Fare().Amount(),
		PaymentStatus: b.PaymentStatus(),
		Status:        sb.status,
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     sb.updatedAt,
		Segments:      make([]queries.SegmentView, 0, len(b.Segments())),
	}
	for i, seg := range b.Segments() {
		sv := queries.SegmentView{ID: sb.detailIDs[i], Flight: st.flights[seg.FlightID()]}
		if tt := seg.TripType(); tt != nil {
			s := tt.String()
			sv.TripType = &s
		}
		if id := seg.SeatID(); id != nil {
			seat := st.seats[*id]
			sv.Seat = &seat
		}
		if id := seg.MealID(); id != nil {
			meal := st.meals[*id]
			sv.Meal = &meal
		}
		if id := seg.BaggageID(); id != nil {
			bag := st.baggage[*id]
			sv.Baggage = &bag
		}
		v.Segments = append(v.Segments, sv)
	}
	return v
}
