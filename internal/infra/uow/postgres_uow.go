package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/infra/readstore"
	"stelwing-booking/internal/infra/repository"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/pkg/errs"
	"stelwing-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxRetries = 3

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errLockTimeout        = errs.New("failed to set lock timeout")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *sqlc.Queries
	lockTimeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:        pool,
		q:           q,
		lockTimeout: cfg.LockTimeout,
	}
}

// ReadCommitted: seat claims rely on guarded updates, not on snapshot isolation
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = u.applyLockTimeout(ctx, pgxTx)
		if err == nil {
			err = fn(ctx, tx)
		}
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !infra.IsRetryablePgError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < waitTime {
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// applyLockTimeout bounds how long a claim waits on a row held by another
// commit: the configured timeout, or less when the request deadline is closer.
// set_config with is_local=true behaves like SET LOCAL.
func (u *PostgresUoW) applyLockTimeout(ctx context.Context, tx pgx.Tx) error {
	timeout := u.lockTimeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return context.DeadlineExceeded
		}
		if timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil
	}
	// postgres rounds to whole milliseconds; 0 would disable the timeout
	ms := max(timeout.Milliseconds(), 1)
	if _, err := tx.Exec(ctx, "SELECT set_config('lock_timeout', $1, true)", strconv.FormatInt(ms, 10)+"ms"); err != nil {
		return errs.Mark(err, errLockTimeout)
	}
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value above
	return int64(uval) % n
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	seatRepo         shared.SeatRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Seats() shared.SeatRepository {
	if t.seatRepo == nil {
		t.seatRepo = repository.NewSeatRepository(t.uow.q, t.dbtx)
	}
	return t.seatRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	catalogStore     *readstore.CatalogReadStore
	bookingStore     *readstore.BookingReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q)
	}
	return r.bookingStore
}

func (r *commandReads) FlightByID(ctx context.Context, id int64) (*shared.FlightSnapshot, error) {
	return r.catalog().FlightByID(ctx, id)
}

func (r *commandReads) SeatByID(ctx context.Context, id int64) (*booking.SeatState, error) {
	return r.catalog().SeatByID(ctx, id)
}

func (r *commandReads) MealByID(ctx context.Context, id int64) (*shared.MealSnapshot, error) {
	return r.catalog().MealByID(ctx, id)
}

func (r *commandReads) BaggageByID(ctx context.Context, id int64) (*shared.BaggageSnapshot, error) {
	return r.catalog().BaggageByID(ctx, id)
}

func (r *commandReads) LocatorExists(ctx context.Context, locator booking.Locator) (bool, error) {
	return r.bookings().LocatorExists(ctx, r.dbtx, locator.String())
}

func (r *commandReads) BookingForCancel(ctx context.Context, locator booking.Locator) (*shared.BookingSnapshot, error) {
	return r.bookings().LockForCancel(ctx, r.dbtx, locator.String())
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key)
}
