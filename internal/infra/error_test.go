//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"stelwing-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		explicit       []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
		wantRetryable  bool
	}{
		{
			name:     "plain error is a db failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
		{
			name:           "unique violation keeps the constraint name",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "bookings_pnr_key"},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: "bookings_pnr_key",
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "booking_details_meal_id_fkey"},
			wantKind: infra.KindForeignKeyViolated, wantConstraint: "booking_details_meal_id_fkey",
		},
		{
			name:          "lock timeout is retryable",
			err:           &pgconn.PgError{Code: "55P03"},
			wantKind:      infra.KindRetryable,
			wantRetryable: true,
		},
		{
			name:          "deadlock is retryable",
			err:           &pgconn.PgError{Code: "40P01"},
			wantKind:      infra.KindRetryable,
			wantRetryable: true,
		},
		{
			name:     "explicit kind wins",
			err:      errors.New("no rows in result set"),
			explicit: []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("op failed", tc.err, tc.explicit...)

			assert.True(t, infra.IsKind(wrapped, tc.wantKind), "got %v", wrapped)
			assert.Equal(t, tc.wantConstraint, infra.ConstraintOf(wrapped))
			assert.Equal(t, tc.wantRetryable, infra.IsRetryablePgError(wrapped))
			assert.True(t, errors.Is(wrapped, tc.err))
		})
	}
}
