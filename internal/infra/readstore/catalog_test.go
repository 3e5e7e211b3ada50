//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	"stelwing-booking/internal/infra/readstore"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/usecase/queries"
	"stelwing-booking/internal/usecase/shared"
	readstoremock "stelwing-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalog(t *testing.T) (*readstore.CatalogReadStore, *readstoremock.MockCatalogQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockCatalogQueries(ctrl)
	db := &mockDBTX{}
	return readstore.NewCatalogReadStore(q, db), q, db
}

func TestCatalogReadStore_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("flight", func(t *testing.T) {
		store, q, db := newCatalog(t)
		q.EXPECT().GetFlightByID(ctx, db, int64(1)).Return(sqlc.Flights{FlightID: 1, FlightNumber: "SW101", Status: "scheduled"}, nil)

		f, err := store.FlightByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, &shared.FlightSnapshot{ID: 1, FlightNumber: "SW101", Status: "scheduled"}, f)
	})

	t.Run("seat", func(t *testing.T) {
		store, q, db := newCatalog(t)
		q.EXPECT().GetSeatByID(ctx, db, int64(11)).Return(sqlc.SeatOptions{SeatID: 11, FlightID: 1, SeatNumber: "12A", IsAvailable: true}, nil)

		s, err := store.SeatByID(ctx, 11)

		require.NoError(t, err)
		assert.Equal(t, &booking.SeatState{ID: 11, FlightID: 1, Available: true}, s)
	})

	t.Run("meal", func(t *testing.T) {
		store, q, db := newCatalog(t)
		q.EXPECT().GetMealByID(ctx, db, int64(31)).Return(sqlc.MealOptions{MealID: 31, MealCode: "VGML"}, nil)

		m, err := store.MealByID(ctx, 31)

		require.NoError(t, err)
		assert.Equal(t, &shared.MealSnapshot{ID: 31, Code: "VGML"}, m)
	})

	t.Run("baggage", func(t *testing.T) {
		store, q, db := newCatalog(t)
		q.EXPECT().GetBaggageByID(ctx, db, int64(41)).Return(sqlc.BaggageOptions{BaggageID: 41, WeightKg: 20}, nil)

		b, err := store.BaggageByID(ctx, 41)

		require.NoError(t, err)
		assert.Equal(t, &shared.BaggageSnapshot{ID: 41, WeightKg: 20}, b)
	})
}

func TestCatalogReadStore_LookupErrors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "missing row", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "database failure", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, q, db := newCatalog(t)
			q.EXPECT().GetFlightByID(ctx, db, gomock.Any()).Return(sqlc.Flights{}, tc.queryErr)
			q.EXPECT().GetSeatByID(ctx, db, gomock.Any()).Return(sqlc.SeatOptions{}, tc.queryErr)
			q.EXPECT().GetMealByID(ctx, db, gomock.Any()).Return(sqlc.MealOptions{}, tc.queryErr)
			q.EXPECT().GetBaggageByID(ctx, db, gomock.Any()).Return(sqlc.BaggageOptions{}, tc.queryErr)

			_, err := store.FlightByID(ctx, 9)
			assert.True(t, infra.IsKind(err, tc.expectKind), "flight: %v", err)
			_, err = store.SeatByID(ctx, 9)
			assert.True(t, infra.IsKind(err, tc.expectKind), "seat: %v", err)
			_, err = store.MealByID(ctx, 9)
			assert.True(t, infra.IsKind(err, tc.expectKind), "meal: %v", err)
			_, err = store.BaggageByID(ctx, 9)
			assert.True(t, infra.IsKind(err, tc.expectKind), "baggage: %v", err)
		})
	}
}

func TestCatalogReadStore_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("seats by flight", func(t *testing.T) {
		store, q, db := newCatalog(t)
		q.EXPECT().ListSeatsByFlight(ctx, db, int64(1)).Return([]sqlc.SeatOptions{
			{SeatID: 11, FlightID: 1, SeatNumber: "12A", CabinClass: "economy", IsAvailable: true},
			{SeatID: 12, FlightID: 1, SeatNumber: "12B", CabinClass: "economy"},
		}, nil)

		seats, err := store.SeatsByFlight(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, []queries.SeatView{
			{ID: 11, FlightID: 1, SeatNumber: "12A", CabinClass: "economy", IsAvailable: true},
			{ID: 12, FlightID: 1, SeatNumber: "12B", CabinClass: "economy"},
		}, seats)
	})

	t.Run("unknown flight yields empty list", func(t *testing.T) {
		store, q, db := newCatalog(t)
		q.EXPECT().ListSeatsByFlight(ctx, db, int64(404)).Return(nil, nil)

		seats, err := store.SeatsByFlight(ctx, 404)

		require.NoError(t, err)
		assert.NotNil(t, seats)
		assert.Empty(t, seats)
	})

	t.Run("meals and baggage", func(t *testing.T) {
		store, q, db := newCatalog(t)
		q.EXPECT().ListMeals(ctx, db).Return([]sqlc.MealOptions{{MealID: 31, MealCode: "VGML", MealName: "Vegetarian", Price: 350}}, nil)
		q.EXPECT().ListBaggage(ctx, db).Return([]sqlc.BaggageOptions{{BaggageID: 41, WeightKg: 20, Price: 1200}}, nil)

		meals, err := store.Meals(ctx)
		require.NoError(t, err)
		assert.Equal(t, []queries.MealView{{ID: 31, Code: "VGML", Name: "Vegetarian", Price: 350}}, meals)

		bags, err := store.Baggage(ctx)
		require.NoError(t, err)
		assert.Equal(t, []queries.BaggageView{{ID: 41, WeightKg: 20, Price: 1200}}, bags)
	})

	t.Run("list failure", func(t *testing.T) {
		store, q, db := newCatalog(t)
		q.EXPECT().ListMeals(ctx, db).Return(nil, errors.New("boom"))

		_, err := store.Meals(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
