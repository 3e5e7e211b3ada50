package repository

import (
	"context"
	"time"

	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/pgconv"
	"stelwing-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.NotificationStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue locks due jobs with SKIP LOCKED; the locks last until tx ends.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, runAt time.Time, lastError string) error {
	params := sqlc.RescheduleNotificationJobParams{
		ID:        jobID,
		Status:    status,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.OptionalText(lastError),
	}

	err := r.queries.RescheduleNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}

	return nil
}
