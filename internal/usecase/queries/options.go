package queries

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"
)

type OptionQueries interface {
	SeatOptions(ctx context.Context, flightID int64) ([]SeatView, error)
	MealOptions(ctx context.Context) ([]MealView, error)
	BaggageOptions(ctx context.Context) ([]BaggageView, error)
}

type OptionStore interface {
	SeatsByFlight(ctx context.Context, flightID int64) ([]SeatView, error)
	Meals(ctx context.Context) ([]MealView, error)
	Baggage(ctx context.Context) ([]BaggageView, error)
}

// SeatMapCache holds per-flight seat maps. A cache failure never fails the
// request; callers fall back to the store.
//
// Every Invalidate bumps the flight's generation. Get reports the current
// generation even on a miss, and Set stores the map under the generation the
// caller saw before reading the store, so a map loaded before an invalidation
// is never served after it.
type SeatMapCache interface {
	Get(ctx context.Context, flightID int64) (seats []SeatView, gen int64, hit bool, err error)
	Set(ctx context.Context, flightID int64, gen int64, seats []SeatView) error
	Invalidate(ctx context.Context, flightIDs ...int64) error
}

type optionQueriesImpl struct {
	store OptionStore
	cache SeatMapCache
	group singleflight.Group
}

func NewOptionQueries(store OptionStore, cache SeatMapCache) OptionQueries {
	return &optionQueriesImpl{store: store, cache: cache}
}

func (q *optionQueriesImpl) SeatOptions(ctx context.Context, flightID int64) ([]SeatView, error) {
	seats, gen, hit, err := q.cache.Get(ctx, flightID)
	if err != nil {
		slog.Warn("seat map cache read failed", "flight_id", flightID, "error", err)
	}
	if hit {
		return seats, nil
	}

	// Concurrent misses for one flight share a single store read.
	v, err, _ := q.group.Do(strconv.FormatInt(flightID, 10), func() (any, error) {
		rows, err := q.store.SeatsByFlight(ctx, flightID)
		if err != nil {
			return nil, err
		}
		if err := q.cache.Set(ctx, flightID, gen, rows); err != nil {
			slog.Warn("seat map cache write failed", "flight_id", flightID, "error", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]SeatView), nil
}

func (q *optionQueriesImpl) MealOptions(ctx context.Context) ([]MealView, error) {
	return q.store.Meals(ctx)
}

func (q *optionQueriesImpl) BaggageOptions(ctx context.Context) ([]BaggageView, error) {
	return q.store.Baggage(ctx)
}
