//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/infra/repository"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/pgconv"
	"stelwing-booking/internal/usecase/shared"
	repositorymock "stelwing-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pgTime(t time.Time) pgtype.Timestamptz {
	return pgconv.TimeToPgtype(t)
}

func newNotificationRepo(t *testing.T) (*repository.NotificationRepository, *repositorymock.MockNotificationWriteQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewNotificationRepository(mockQueries, mockDB), mockQueries, mockDB
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"pnr":"ABC234"}`)

	t.Run("success: job queued", func(t *testing.T) {
		repo, mockQueries, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
			Kind:    "booking",
			Topic:   "booking.confirmed",
			Payload: payload,
			RunAt:   pgTime(fixedNow),
			Status:  shared.NotificationStatusQueued,
		}).Return(nil)

		require.NoError(t, repo.CreateJob(ctx, mockDB, "booking", "booking.confirmed", payload, fixedNow))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		repo, mockQueries, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("disk full"))

		err := repo.CreateJob(ctx, mockDB, "booking", "booking.confirmed", payload, fixedNow)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: rows mapped to jobs", func(t *testing.T) {
		repo, mockQueries, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
			RunAt: pgTime(fixedNow),
			Limit: 10,
		}).Return([]sqlc.NotificationJobs{
			{ID: id, Kind: "booking", Topic: "booking.cancelled", Payload: []byte("{}"), Attempts: 2},
		}, nil)

		jobs, err := repo.ClaimDue(ctx, mockDB, fixedNow, 10)

		require.NoError(t, err)
		assert.Equal(t, []shared.NotificationJob{
			{ID: id, Kind: "booking", Topic: "booking.cancelled", Payload: []byte("{}"), Attempts: 2},
		}, jobs)
	})

	t.Run("success: nothing due", func(t *testing.T) {
		repo, mockQueries, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, nil)

		jobs, err := repo.ClaimDue(ctx, mockDB, fixedNow, 10)

		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		repo, mockQueries, mockDB := newNotificationRepo(t)
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := repo.ClaimDue(ctx, mockDB, fixedNow, 10)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_Reschedule(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	runAt := fixedNow.Add(4 * time.Second)

	testCases := []struct {
		name      string
		lastError string
		wantText  pgtype.Text
	}{
		{name: "with last error", lastError: "broker down", wantText: pgtype.Text{String: "broker down", Valid: true}},
		{name: "without last error", wantText: pgtype.Text{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newNotificationRepo(t)
			mockQueries.EXPECT().RescheduleNotificationJob(ctx, mockDB, sqlc.RescheduleNotificationJobParams{
				ID:        id,
				Status:    shared.NotificationStatusQueued,
				RunAt:     pgTime(runAt),
				LastError: tc.wantText,
			}).Return(nil)

			require.NoError(t, repo.Reschedule(ctx, mockDB, id, shared.NotificationStatusQueued, runAt, tc.lastError))
		})
	}
}

func TestNotificationRepository_MarkSent(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo, mockQueries, mockDB := newNotificationRepo(t)
	gomock.InOrder(
		mockQueries.EXPECT().MarkNotificationJobSent(ctx, mockDB, id).Return(nil),
		mockQueries.EXPECT().MarkNotificationJobSent(ctx, mockDB, id).Return(errors.New("boom")),
	)

	require.NoError(t, repo.MarkSent(ctx, mockDB, id))
	err := repo.MarkSent(ctx, mockDB, id)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
