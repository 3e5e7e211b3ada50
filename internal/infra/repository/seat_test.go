//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/infra/repository"
	repositorymock "stelwing-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeatRepository_ClaimRelease(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		release       bool
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectMessage string
	}{
		{name: "success: available seat claimed", affected: 1},
		{
			name:          "error: seat already taken",
			affected:      0,
			expectedError: true,
			expectKind:    infra.KindConflict,
			expectMessage: "seat 11 is not available",
		},
		{
			name:          "error: deadlock while claiming",
			queryErr:      &pgconn.PgError{Code: "40P01"},
			expectedError: true,
			expectKind:    infra.KindRetryable,
		},
		{name: "success: claimed seat released", release: true, affected: 1},
		{
			name:          "error: seat is not claimed",
			release:       true,
			affected:      0,
			expectedError: true,
			expectKind:    infra.KindConflict,
			expectMessage: "seat 11 is not claimed",
		},
		{
			name:          "error: database error on release",
			release:       true,
			queryErr:      errors.New("connection reset"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSeatWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSeatRepository(mockQueries, mockDB)

			var actualError error
			if tc.release {
				mockQueries.EXPECT().ReleaseSeat(ctx, mockDB, int64(11)).Return(tc.affected, tc.queryErr)
				actualError = repo.Release(ctx, mockDB, 11)
			} else {
				mockQueries.EXPECT().ClaimSeat(ctx, mockDB, int64(11)).Return(tc.affected, tc.queryErr)
				actualError = repo.Claim(ctx, mockDB, 11)
			}

			if !tc.expectedError {
				assert.NoError(t, actualError)
				return
			}
			require.Error(t, actualError)
			assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			if tc.expectMessage != "" {
				assert.Contains(t, actualError.Error(), tc.expectMessage)
			}
		})
	}
}
