//go:build unit

package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"stelwing-booking/internal/usecase/queries"
	queriesmock "stelwing-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var seatMap = []queries.SeatView{
	{ID: 11, FlightID: 1, SeatNumber: "12A", CabinClass: "economy", IsAvailable: true},
	{ID: 12, FlightID: 1, SeatNumber: "12B", CabinClass: "economy"},
}

func TestOptionQueries_SeatOptions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*queriesmock.MockOptionStore, *queriesmock.MockSeatMapCache)
		expectedSeats []queries.SeatView
		expectedError bool
	}{
		{
			name: "cache hit skips the store",
			setupMock: func(store *queriesmock.MockOptionStore, cache *queriesmock.MockSeatMapCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(seatMap, int64(3), true, nil)
			},
			expectedSeats: seatMap,
		},
		{
			name: "cache miss reads the store and fills the cache",
			setupMock: func(store *queriesmock.MockOptionStore, cache *queriesmock.MockSeatMapCache) {
				gomock.InOrder(
					cache.EXPECT().Get(ctx, int64(1)).Return(nil, int64(3), false, nil),
					store.EXPECT().SeatsByFlight(ctx, int64(1)).Return(seatMap, nil),
					cache.EXPECT().Set(ctx, int64(1), int64(3), seatMap).Return(nil),
				)
			},
			expectedSeats: seatMap,
		},
		{
			name: "cache read failure falls back to the store",
			setupMock: func(store *queriesmock.MockOptionStore, cache *queriesmock.MockSeatMapCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(nil, int64(0), false, errors.New("redis: connection refused"))
				store.EXPECT().SeatsByFlight(ctx, int64(1)).Return(seatMap, nil)
				cache.EXPECT().Set(ctx, int64(1), int64(0), seatMap).Return(errors.New("redis: connection refused"))
			},
			expectedSeats: seatMap,
		},
		{
			name: "store failure is returned",
			setupMock: func(store *queriesmock.MockOptionStore, cache *queriesmock.MockSeatMapCache) {
				cache.EXPECT().Get(ctx, int64(1)).Return(nil, int64(0), false, nil)
				store.EXPECT().SeatsByFlight(ctx, int64(1)).Return(nil, errors.New("boom"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockOptionStore(ctrl)
			cache := queriesmock.NewMockSeatMapCache(ctrl)
			tc.setupMock(store, cache)

			seats, err := queries.NewOptionQueries(store, cache).SeatOptions(ctx, 1)

			if tc.expectedError {
				assert.Error(t, err)
				assert.Nil(t, seats)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSeats, seats)
		})
	}
}

func TestOptionQueries_SeatOptions_SharesConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOptionStore(ctrl)
	cache := queriesmock.NewMockSeatMapCache(ctrl)

	const callers = 8
	var arrived sync.WaitGroup
	arrived.Add(callers)
	release := make(chan struct{})

	cache.EXPECT().Get(ctx, int64(1)).Times(callers).DoAndReturn(
		func(context.Context, int64) ([]queries.SeatView, int64, bool, error) {
			arrived.Done()
			return nil, 0, false, nil
		})
	store.EXPECT().SeatsByFlight(ctx, int64(1)).MinTimes(1).MaxTimes(callers).DoAndReturn(
		func(context.Context, int64) ([]queries.SeatView, error) {
			<-release
			return seatMap, nil
		})
	cache.EXPECT().Set(ctx, int64(1), int64(0), seatMap).MinTimes(1).MaxTimes(callers).Return(nil)

	q := queries.NewOptionQueries(store, cache)

	var wg sync.WaitGroup
	results := make([][]queries.SeatView, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seats, err := q.SeatOptions(ctx, 1)
			assert.NoError(t, err)
			results[i] = seats
		}(i)
	}

	arrived.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, seatMap, r)
	}
}

func TestOptionQueries_MealAndBaggage(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOptionStore(ctrl)
	cache := queriesmock.NewMockSeatMapCache(ctrl)

	meals := []queries.MealView{{ID: 31, Code: "VGML", Name: "Vegetarian", Price: 350}}
	bags := []queries.BaggageView{{ID: 41, WeightKg: 20, Price: 1200}}
	store.EXPECT().Meals(ctx).Return(meals, nil)
	store.EXPECT().Baggage(ctx).Return(bags, nil)

	q := queries.NewOptionQueries(store, cache)

	gotMeals, err := q.MealOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, meals, gotMeals)

	gotBags, err := q.BaggageOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, bags, gotBags)
}
