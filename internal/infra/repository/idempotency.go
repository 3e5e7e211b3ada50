package repository

import (
	"context"
	"time"

	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	CreateIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateIdempotencyKeyParams) error
	DeleteExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) Save(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, requestHash string, bookingID int64, expiresAt time.Time) error {
	params := sqlc.CreateIdempotencyKeyParams{
		Key:         key,
		RequestHash: requestHash,
		BookingID:   bookingID,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	err := r.queries.CreateIdempotencyKey(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to save idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKey(ctx, tx, key)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency key", err)
	}

	return count, nil
}
