package readstore

import (
	"context"

	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/pgconv"
	"stelwing-booking/internal/usecase/queries"
	"stelwing-booking/internal/usecase/shared"
)

type CatalogQueries interface {
	GetFlightByID(ctx context.Context, db sqlc.DBTX, flightID int64) (sqlc.Flights, error)
	GetSeatByID(ctx context.Context, db sqlc.DBTX, seatID int64) (sqlc.SeatOptions, error)
	GetMealByID(ctx context.Context, db sqlc.DBTX, mealID int64) (sqlc.MealOptions, error)
	GetBaggageByID(ctx context.Context, db sqlc.DBTX, baggageID int64) (sqlc.BaggageOptions, error)
	ListSeatsByFlight(ctx context.Context, db sqlc.DBTX, flightID int64) ([]sqlc.SeatOptions, error)
	ListMeals(ctx context.Context, db sqlc.DBTX) ([]sqlc.MealOptions, error)
	ListBaggage(ctx context.Context, db sqlc.DBTX) ([]sqlc.BaggageOptions, error)
}

// CatalogReadStore reads flights and the bookable options. Flights and
// options are maintained outside this service.
type CatalogReadStore struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FlightByID(ctx context.Context, id int64) (*shared.FlightSnapshot, error) {
	row, err := r.queries.GetFlightByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("flight not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find flight", err)
	}
	return &shared.FlightSnapshot{
		ID:           row.FlightID,
		FlightNumber: row.FlightNumber,
		Status:       row.Status,
	}, nil
}

func (r *CatalogReadStore) SeatByID(ctx context.Context, id int64) (*booking.SeatState, error) {
	row, err := r.queries.GetSeatByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seat", err)
	}
	return &booking.SeatState{
		ID:        row.SeatID,
		FlightID:  row.FlightID,
		Available: row.IsAvailable,
	}, nil
}

func (r *CatalogReadStore) MealByID(ctx context.Context, id int64) (*shared.MealSnapshot, error) {
	row, err := r.queries.GetMealByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meal", err)
	}
	return &shared.MealSnapshot{ID: row.MealID, Code: row.MealCode}, nil
}

func (r *CatalogReadStore) BaggageByID(ctx context.Context, id int64) (*shared.BaggageSnapshot, error) {
	row, err := r.queries.GetBaggageByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("baggage option not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find baggage option", err)
	}
	return &shared.BaggageSnapshot{ID: row.BaggageID, WeightKg: row.WeightKg}, nil
}

// SeatsByFlight returns an empty list for an unknown flight.
func (r *CatalogReadStore) SeatsByFlight(ctx context.Context, flightID int64) ([]queries.SeatView, error) {
	rows, err := r.queries.ListSeatsByFlight(ctx, r.db, flightID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seats", err)
	}

	result := make([]queries.SeatView, len(rows))
	for i, row := range rows {
		result[i] = queries.SeatView{
			ID:          row.SeatID,
			FlightID:    row.FlightID,
			SeatNumber:  row.SeatNumber,
			CabinClass:  row.CabinClass,
			IsAvailable: row.IsAvailable,
		}
	}
	return result, nil
}

func (r *CatalogReadStore) Meals(ctx context.Context) ([]queries.MealView, error) {
	rows, err := r.queries.ListMeals(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meals", err)
	}

	result := make([]queries.MealView, len(rows))
	for i, row := range rows {
		result[i] = queries.MealView{
			ID:    row.MealID,
			Code:  row.MealCode,
			Name:  row.MealName,
			Price: row.Price,
		}
	}
	return result, nil
}

func (r *CatalogReadStore) Baggage(ctx context.Context) ([]queries.BaggageView, error) {
	rows, err := r.queries.ListBaggage(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list baggage options", err)
	}

	result := make([]queries.BaggageView, len(rows))
	for i, row := range rows {
		result[i] = queries.BaggageView{
			ID:       row.BaggageID,
			WeightKg: row.WeightKg,
			Price:    row.Price,
		}
	}
	return result, nil
}
