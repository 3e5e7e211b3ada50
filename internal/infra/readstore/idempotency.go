package readstore

import (
	"context"

	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/pgconv"
	"stelwing-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns expired records too; the caller decides whether to reclaim them.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:         row.Key,
		RequestHash: row.RequestHash,
		BookingID:   row.BookingID,
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
