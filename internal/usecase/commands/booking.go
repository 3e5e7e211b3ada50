package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"stelwing-booking/internal/domain/booking"
	reqdto "stelwing-booking/internal/handler/dto/request"
	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/pkg/clock"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/pkg/errs"
	"stelwing-booking/internal/pkg/metrics"
	"stelwing-booking/internal/usecase/queries"
	"stelwing-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	idempotencyConstraint = "idempotency_keys_pkey"

	EventKindBooking      = "booking"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
)

// stage is how far a commit attempt got. Only logs and metrics see it; callers
// observe committed or aborted.
type stage string

const (
	stageStarted         stage = "started"
	stageLocatorReserved stage = "locator_reserved"
	stageSeatsClaimed    stage = "seats_claimed"
	stagePersisted       stage = "persisted"
	stageCommitted       stage = "committed"
)

type CommitInput struct {
	Request        reqdto.CreateBookingRequest
	MemberID       *uuid.UUID
	IdempotencyKey *uuid.UUID
}

// CommitResult is what a commit produced. BookingID and Locator are always
// set once the booking is durable; Reservation is nil when the booking was
// committed but its view could not be read back.
type CommitResult struct {
	BookingID   int64
	Locator     string
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type BookingCommands interface {
	Commit(ctx context.Context, in CommitInput) (*CommitResult, error)
	Cancel(ctx context.Context, locator string, actorID uuid.UUID) (*queries.ReservationView, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	locators booking.LocatorGenerator
	views    queries.BookingQueries
	seatMaps queries.SeatMapCache
	metrics  *metrics.BookingMetrics
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	locators booking.LocatorGenerator,
	views queries.BookingQueries,
	seatMaps queries.SeatMapCache,
	m *metrics.BookingMetrics,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	if cfg.LocatorMaxAttempts <= 0 {
		cfg.LocatorMaxAttempts = 1
	}
	if cfg.CommitMaxAttempts <= 0 {
		cfg.CommitMaxAttempts = 1
	}
	return &bookingUseCaseImpl{
		uow:      uow,
		locators: locators,
		views:    views,
		seatMaps: seatMaps,
		metrics:  m,
		clock:    clk,
		cfg:      cfg,
	}
}

// Commit books every segment of the request or nothing.
func (uc *bookingUseCaseImpl) Commit(ctx context.Context, in CommitInput) (*CommitResult, error) {
	started := time.Now()

	draft, err := booking.NewDraft(in.Request.ToDomain(in.MemberID))
	if err != nil {
		uc.metrics.ObserveCommit(metrics.OutcomeRejected, started)
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var requestHash string
	if in.IdempotencyKey != nil {
		requestHash = hashRequest(in)
		view, rerr := uc.replay(ctx, *in.IdempotencyKey, requestHash)
		if rerr != nil {
			uc.metrics.ObserveCommit(outcomeOf(rerr), started)
			return nil, rerr
		}
		if view != nil {
			uc.metrics.ObserveCommit(metrics.OutcomeReplayed, started)
			return &CommitResult{BookingID: view.ID, Locator: view.Locator, Reservation: view, IsReplayed: true}, nil
		}
	}

	bookingID, locator, err := uc.commitWithRetry(ctx, draft, in.IdempotencyKey, requestHash)
	if err != nil {
		// A concurrent request with the same key may have won the race.
		if in.IdempotencyKey != nil && (isIdempotencyKeyTaken(err) || errs.Is(err, ErrSeatUnavailable)) {
			view, rerr := uc.replay(ctx, *in.IdempotencyKey, requestHash)
			if rerr == nil && view != nil {
				uc.metrics.ObserveCommit(metrics.OutcomeReplayed, started)
				return &CommitResult{BookingID: view.ID, Locator: view.Locator, Reservation: view, IsReplayed: true}, nil
			}
			if errs.Is(rerr, ErrIdempotencyKeyReused) {
				uc.metrics.ObserveCommit(metrics.OutcomeRejected, started)
				return nil, rerr
			}
		}
		err = translate(err)
		uc.metrics.ObserveCommit(outcomeOf(err), started)
		return nil, err
	}

	uc.invalidateSeatMaps(ctx, draft.FlightIDs())

	uc.metrics.ObserveCommit(metrics.OutcomeCommitted, started)
	result := &CommitResult{BookingID: bookingID, Locator: locator.String()}

	// The booking is durable here; a failed read-back is not a failed commit.
	view, err := uc.views.GetByID(ctx, bookingID)
	if err != nil {
		slog.Warn("committed booking could not be read back",
			"booking_id", bookingID,
			"locator", result.Locator,
			"error", err.Error())
		return result, nil
	}
	result.Reservation = view
	return result, nil
}

// commitWithRetry reruns the whole unit of work when the pnr constraint
// rejects a locator that passed the existence check.
func (uc *bookingUseCaseImpl) commitWithRetry(ctx context.Context, draft *booking.Draft, key *uuid.UUID, requestHash string) (int64, booking.Locator, error) {
	for attempt := 1; ; attempt++ {
		id, loc, err := uc.commitOnce(ctx, draft, key, requestHash)
		if err == nil || !isLocatorTaken(err) {
			return id, loc, err
		}

		uc.metrics.LocatorCollision()
		if attempt >= uc.cfg.CommitMaxAttempts {
			uc.metrics.LocatorExhausted()
			slog.Error("locator still taken after commit retries", "attempts", attempt)
			return 0, "", errs.Mark(err, ErrLocatorExhausted)
		}
		slog.Warn("locator taken at insert, retrying commit", "attempt", attempt)
	}
}

func (uc *bookingUseCaseImpl) commitOnce(ctx context.Context, draft *booking.Draft, key *uuid.UUID, requestHash string) (int64, booking.Locator, error) {
	var (
		st        stage
		bookingID int64
		locator   booking.Locator
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		st = stageStarted

		loc, err := uc.reserveLocator(ctx, tx)
		if err != nil {
			return err
		}
		locator = loc
		st = stageLocatorReserved

		// List order, one segment at a time: flight, seat claim, then options.
		// The first failing segment decides the error; a seat requested twice
		// fails on its second segment.
		segments := draft.Segments()
		for i, seg := range segments {
			if err := uc.processSegment(ctx, tx, seg); err != nil {
				return withSegment(err, i, seg)
			}
		}
		st = stageSeatsClaimed

		now := uc.clock.Now()
		b := draft.Confirm(locator, now)
		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			if isLocatorTaken(err) {
				return errs.Mark(err, errLocatorTaken)
			}
			return err
		}

		if key != nil {
			if _, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), *key); err != nil {
				return err
			}
			if err := tx.Idempotency().Save(ctx, tx.DB(), *key, requestHash, id, now.Add(uc.cfg.IdempotencyTTL)); err != nil {
				return err
			}
		}

		if err := uc.enqueueEvent(ctx, tx, TopicBookingConfirmed, id, b.Locator(), b.MemberID(), segments, now); err != nil {
			return err
		}

		bookingID = id
		st = stagePersisted
		return nil
	})
	if err != nil {
		slog.Warn("booking commit aborted",
			"stage", string(st),
			"locator", locator.String(),
			"error", err.Error())
		return 0, "", err
	}

	slog.Info("booking committed",
		"stage", string(stageCommitted),
		"booking_id", bookingID,
		"locator", locator.String(),
		"segments", len(draft.Segments()))
	return bookingID, locator, nil
}

func (uc *bookingUseCaseImpl) processSegment(ctx context.Context, tx shared.Tx, seg booking.Segment) error {
	if _, err := tx.Reads().FlightByID(ctx, seg.FlightID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrFlightNotFound
		}
		return err
	}
	if err := uc.claimSeat(ctx, tx, seg); err != nil {
		return err
	}
	if id := seg.MealID(); id != nil {
		if _, err := tx.Reads().MealByID(ctx, *id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMealNotFound
			}
			return err
		}
	}
	if id := seg.BaggageID(); id != nil {
		if _, err := tx.Reads().BaggageByID(ctx, *id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBaggageNotFound
			}
			return err
		}
	}
	return nil
}

// Cancel releases every seat of the booking with the reverse guard and marks
// it cancelled. A booking with a member can only be cancelled by that member.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, locator string, actorID uuid.UUID) (*queries.ReservationView, error) {
	loc, err := booking.ParseLocator(locator)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationNotFound)
	}

	var bookingID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingForCancel(ctx, loc)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if snap.MemberID != nil && *snap.MemberID != actorID {
			return ErrNotReservationOwner
		}
		if err := booking.EnsureCancellable(booking.Status(snap.Status)); err != nil {
			return errs.Mark(err, ErrReservationCancelled)
		}

		if err := releaseSeats(ctx, tx, snap.SeatIDs); err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := tx.Bookings().MarkCancelled(ctx, tx.DB(), snap.ID, now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrReservationCancelled)
			}
			return err
		}

		if err := uc.enqueueEvent(ctx, tx, TopicBookingCancelled, snap.ID, loc, snap.MemberID, nil, now); err != nil {
			return err
		}
		bookingID = snap.ID
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	view, err := uc.views.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "load cancelled booking")
	}

	flightIDs := make([]int64, 0, len(view.Segments))
	for _, s := range view.Segments {
		flightIDs = append(flightIDs, s.Flight.ID)
	}
	uc.invalidateSeatMaps(ctx, flightIDs)

	slog.Info("booking cancelled", "booking_id", bookingID, "locator", loc.String())
	return view, nil
}

// replay returns the booking stored under key, nil when the key is unused or
// expired, or ErrIdempotencyKeyReused when it was used for another request.
func (uc *bookingUseCaseImpl) replay(ctx context.Context, key uuid.UUID, requestHash string) (*queries.ReservationView, error) {
	rec, err := uc.uow.CommandReads().IdempotencyByKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}
	if rec.Expired(uc.clock.Now()) {
		return nil, nil
	}
	if rec.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	view, err := uc.views.GetByID(ctx, rec.BookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}
	return view, nil
}

type bookingEvent struct {
	Event      string     `json:"event"`
	BookingID  int64      `json:"booking_id"`
	Locator    string     `json:"locator"`
	MemberID   *uuid.UUID `json:"member_id,omitempty"`
	FlightIDs  []int64    `json:"flight_ids,omitempty"`
	SeatIDs    []int64    `json:"seat_ids,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func (uc *bookingUseCaseImpl) enqueueEvent(
	ctx context.Context,
	tx shared.Tx,
	topic string,
	bookingID int64,
	locator booking.Locator,
	memberID *uuid.UUID,
	segments []booking.Segment,
	now time.Time,
) error {
	ev := bookingEvent{
		Event:      topic,
		BookingID:  bookingID,
		Locator:    locator.String(),
		MemberID:   memberID,
		OccurredAt: now,
	}
	for _, s := range segments {
		ev.FlightIDs = append(ev.FlightIDs, s.FlightID())
		if s.SeatID() != nil {
			ev.SeatIDs = append(ev.SeatIDs, *s.SeatID())
		}
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), EventKindBooking, topic, payload, now)
}

func (uc *bookingUseCaseImpl) invalidateSeatMaps(ctx context.Context, flightIDs []int64) {
	if len(flightIDs) == 0 {
		return
	}
	if err := uc.seatMaps.Invalidate(ctx, flightIDs...); err != nil {
		slog.Warn("seat map invalidation failed", "flight_ids", flightIDs, "error", err)
	}
}

func withSegment(err error, index int, seg booking.Segment) error {
	if seg.SeatID() != nil {
		return errs.WithDetail(err, "segment=%d flight_id=%d seat_id=%d", index, seg.FlightID(), *seg.SeatID())
	}
	return errs.WithDetail(err, "segment=%d flight_id=%d", index, seg.FlightID())
}

var businessErrors = []error{
	ErrLocatorExhausted,
	ErrFlightNotFound,
	ErrSeatNotFound,
	ErrSeatFlightMismatch,
	ErrSeatUnavailable,
	ErrMealNotFound,
	ErrBaggageNotFound,
	ErrDomainValidation,
	ErrIdempotencyKeyReused,
	ErrReservationNotFound,
	ErrReservationCancelled,
	ErrNotReservationOwner,
	ErrSeatNotClaimed,
	ErrPersistenceFailure,
}

// translate leaves known outcomes alone and reports everything else coming
// out of the store as a retryable persistence failure.
func translate(err error) error {
	for _, known := range businessErrors {
		if errs.Is(err, known) {
			return err
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errs.Mark(err, ErrPersistenceFailure)
}

func outcomeOf(err error) string {
	switch {
	case errs.Is(err, ErrPersistenceFailure), errs.Is(err, ErrLocatorExhausted):
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomeRejected
	}
}

func isIdempotencyKeyTaken(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == idempotencyConstraint
}

func hashRequest(in CommitInput) string {
	data, _ := json.Marshal(struct {
		MemberID *uuid.UUID                  `json:"member_id"`
		Request  reqdto.CreateBookingRequest `json:"request"`
	}{in.MemberID, in.Request})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
