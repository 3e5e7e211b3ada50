//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/infra/repository"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/tests/common/builder"
	repositorymock "stelwing-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func twoSegmentBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := builder.NewBookingBuilder().
		Segment(builder.NewSegment(1).Seat(11).Meal(31)).
		Segment(builder.NewSegment(2).Inbound().Baggage(41)).
		BuildDomain("ABC234", fixedNow)
	require.NoError(t, err)
	return b
}

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedID    int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectConstr  string
	}{
		{
			name: "success: header and details written in segment order",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error) {
							assert.Equal(t, "ABC234", arg.Pnr)
							assert.Equal(t, "confirmed", arg.Status)
							assert.Equal(t, "TWD", arg.Currency)
							assert.Equal(t, int64(12800), arg.TotalAmount)
							assert.False(t, arg.MemberID.Valid)
							return 7, nil
						}),
					mock.EXPECT().CreateBookingDetail(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingDetailParams) (int64, error) {
							assert.Equal(t, int64(7), arg.BookingID)
							assert.Equal(t, int64(1), arg.FlightID)
							assert.Equal(t, int64(11), arg.SeatID.Int64)
							assert.Equal(t, int64(31), arg.MealID.Int64)
							assert.False(t, arg.BaggageID.Valid)
							assert.Equal(t, "outbound", arg.TripType.String)
							return 70, nil
						}),
					mock.EXPECT().CreateBookingDetail(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingDetailParams) (int64, error) {
							assert.Equal(t, int64(2), arg.FlightID)
							assert.False(t, arg.SeatID.Valid)
							assert.Equal(t, int64(41), arg.BaggageID.Int64)
							assert.Equal(t, "inbound", arg.TripType.String)
							return 71, nil
						}),
				)
			},
			expectedID: 7,
		},
		{
			name: "error: locator already taken",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_pnr_key"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(int64(0), dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
			expectConstr:  "bookings_pnr_key",
		},
		{
			name: "error: detail references a missing option",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", ConstraintName: "booking_details_meal_id_fkey"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(int64(7), nil)
				mock.EXPECT().CreateBookingDetail(ctx, tx, gomock.Any()).Return(int64(0), fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
			expectConstr:  "booking_details_meal_id_fkey",
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			id, actualError := repo.Create(ctx, mockDB, twoSegmentBooking(t))

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Equal(t, tc.expectConstr, infra.ConstraintOf(actualError))
				assert.Zero(t, id)
				return
			}
			assert.NoError(t, actualError)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

// =============================================================================
// MarkCancelled Tests
// =============================================================================

func TestBookingRepository_MarkCancelled(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: booking cancelled", affected: 1},
		{name: "error: booking already cancelled", affected: 0, expectedError: true, expectKind: infra.KindConflict},
		{name: "error: lock timeout", queryErr: &pgconn.PgError{Code: "55P03"}, expectedError: true, expectKind: infra.KindRetryable},
		{name: "error: database error occurs", queryErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
					assert.Equal(t, int64(7), arg.BookingID)
					assert.Equal(t, "cancelled", arg.Status)
					assert.Equal(t, fixedNow, arg.UpdatedAt.Time)
					return tc.affected, tc.queryErr
				})

			actualError := repo.MarkCancelled(ctx, mockDB, 7, fixedNow)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
