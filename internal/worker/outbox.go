package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stelwing-booking/internal/pkg/clock"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/pkg/metrics"
	"stelwing-booking/internal/usecase/shared"
)

const (
	retryBaseDelay      = 2 * time.Second
	retryMaxDelay       = 5 * time.Minute
	defaultPollInterval = 2 * time.Second
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// OutboxRelay drains notification_jobs written by booking commits and
// cancellations. Jobs are claimed with SKIP LOCKED, so several relays can run
// against one database; delivery is at least once.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	metrics   *metrics.BookingMetrics
	clock     clock.Clock
	cfg       config.AMQPConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, m *metrics.BookingMetrics, clk clock.Clock, cfg config.AMQPConfig) *OutboxRelay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	// time.NewTicker panics on a non-positive interval.
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		metrics:   m,
		clock:     clk,
		cfg:       cfg,
	}
}

func (r *OutboxRelay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go r.loop(ctx)
}

func (r *OutboxRelay) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *OutboxRelay) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("outbox relay started", "interval", r.cfg.PollInterval, "batch", r.cfg.BatchSize)
	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay batch failed", "error", err)
			}
		}
	}
}

// RunOnce relays one batch and reports how many jobs were published.
// A failed publish reschedules that job and does not abort the batch.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if perr := r.publisher.Publish(ctx, job.Topic, job.Payload); perr != nil {
				if err := r.reschedule(ctx, tx, job, now, perr); err != nil {
					return err
				}
				continue
			}

			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			r.metrics.OutboxJob(job.Topic, "sent")
			published++
		}
		return nil
	})
	return published, err
}

func (r *OutboxRelay) reschedule(ctx context.Context, tx shared.Tx, job shared.NotificationJob, now time.Time, cause error) error {
	attempts := job.Attempts + 1
	status := shared.NotificationStatusQueued
	result := "retry"
	if attempts >= r.cfg.MaxAttempts {
		status = shared.NotificationStatusFailed
		result = "failed"
	}

	slog.Warn("outbox publish failed",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", attempts,
		"status", status,
		"error", cause,
	)
	r.metrics.OutboxJob(job.Topic, result)
	return tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, status, now.Add(RetryDelay(attempts)), cause.Error())
}

// RetryDelay doubles from retryBaseDelay per attempt, capped at retryMaxDelay.
func RetryDelay(attempts int32) time.Duration {
	d := retryBaseDelay
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return d
}
