//go:build unit

package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stelwing-booking/internal/infra/cache"
	"stelwing-booking/internal/usecase/queries"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryJSON(t *testing.T, gen int64, seats []queries.SeatView) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"gen": gen, "seats": seats})
	require.NoError(t, err)
	return string(raw)
}

func TestRedisSeatMap_Get(t *testing.T) {
	ctx := context.Background()
	seats := []queries.SeatView{
		{ID: 1, FlightID: 7, SeatNumber: "12A", CabinClass: "economy", IsAvailable: true},
		{ID: 2, FlightID: 7, SeatNumber: "12B", CabinClass: "economy", IsAvailable: false},
	}

	testCases := []struct {
		name      string
		setupMock func(mock redismock.ClientMock)
		wantHit   bool
		wantGen   int64
		wantSeats []queries.SeatView
		wantErr   bool
	}{
		{
			name: "hit decodes the cached seat map",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectMGet("seats:7", "seats:7:gen").SetVal([]any{entryJSON(t, 2, seats), "2"})
			},
			wantHit:   true,
			wantGen:   2,
			wantSeats: seats,
		},
		{
			name: "never invalidated flight is generation zero",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectMGet("seats:7", "seats:7:gen").SetVal([]any{entryJSON(t, 0, seats), nil})
			},
			wantHit:   true,
			wantSeats: seats,
		},
		{
			name: "missing key is a miss that still reports the generation",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectMGet("seats:7", "seats:7:gen").SetVal([]any{nil, "4"})
			},
			wantGen: 4,
		},
		{
			name: "entry written before an invalidation is a miss",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectMGet("seats:7", "seats:7:gen").SetVal([]any{entryJSON(t, 1, seats), "2"})
			},
			wantGen: 2,
		},
		{
			name: "redis failure is reported",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectMGet("seats:7", "seats:7:gen").SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "corrupt payload is reported",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectMGet("seats:7", "seats:7:gen").SetVal([]any{"{not json", "3"})
			},
			wantGen: 3,
			wantErr: true,
		},
		{
			name: "corrupt generation is reported",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectMGet("seats:7", "seats:7:gen").SetVal([]any{nil, "x"})
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tc.setupMock(mock)

			got, gen, hit, err := cache.NewRedisSeatMap(client, time.Minute).Get(ctx, 7)

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantHit, hit)
			assert.Equal(t, tc.wantGen, gen)
			assert.Equal(t, tc.wantSeats, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisSeatMap_SetUsesTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	seats := []queries.SeatView{{ID: 3, FlightID: 9, SeatNumber: "1C", CabinClass: "business", IsAvailable: true}}

	mock.ExpectSet("seats:9", []byte(entryJSON(t, 5, seats)), 30*time.Second).SetVal("OK")

	err := cache.NewRedisSeatMap(client, 30*time.Second).Set(context.Background(), 9, 5, seats)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSeatMap_Invalidate(t *testing.T) {
	t.Run("bumps every generation and deletes every flight key", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectIncr("seats:1:gen").SetVal(1)
		mock.ExpectIncr("seats:2:gen").SetVal(6)
		mock.ExpectDel("seats:1", "seats:2").SetVal(2)

		err := cache.NewRedisSeatMap(client, time.Minute).Invalidate(context.Background(), 1, 2)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no flights is a no-op", func(t *testing.T) {
		client, mock := redismock.NewClientMock()

		err := cache.NewRedisSeatMap(client, time.Minute).Invalidate(context.Background())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure is reported", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectIncr("seats:1:gen").SetErr(redis.ErrClosed)

		err := cache.NewRedisSeatMap(client, time.Minute).Invalidate(context.Background(), 1)

		assert.Error(t, err)
	})
}
