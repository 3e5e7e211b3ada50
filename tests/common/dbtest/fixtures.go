//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference catalogue ids seeded by SeedReferenceData.
const (
	FlightOutbound int64 = 1
	FlightInbound  int64 = 2

	SeatOutbound12A int64 = 11
	SeatOutbound12B int64 = 12
	SeatInbound3C   int64 = 21

	MealVegetarian int64 = 31
	Baggage20Kg    int64 = 41
)

// SeedReferenceData inserts the flight catalogue used by tests.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO flights (flight_id, flight_number, flight_date, origin_iata, destination_iata, dep_time_utc, arr_time_utc) VALUES
		    (1, 'SW101', DATE '2030-05-01', 'TPE', 'NRT', TIMESTAMPTZ '2030-05-01 01:00:00+00', TIMESTAMPTZ '2030-05-01 04:10:00+00'),
		    (2, 'SW102', DATE '2030-05-08', 'NRT', 'TPE', TIMESTAMPTZ '2030-05-08 06:00:00+00', TIMESTAMPTZ '2030-05-08 09:30:00+00')
		ON CONFLICT (flight_id) DO NOTHING;

		INSERT INTO seat_options (seat_id, flight_id, seat_number, cabin_class) VALUES
		    (11, 1, '12A', 'economy'),
		    (12, 1, '12B', 'economy'),
		    (21, 2, '3C', 'business')
		ON CONFLICT (seat_id) DO NOTHING;

		INSERT INTO meal_options (meal_id, meal_code, meal_name, price) VALUES
		    (31, 'VGML', 'Vegetarian', 350)
		ON CONFLICT (meal_id) DO NOTHING;

		INSERT INTO baggage_options (baggage_id, weight_kg, price) VALUES
		    (41, 20, 1200)
		ON CONFLICT (baggage_id) DO NOTHING;
	`)
	return err
}

// Querier is satisfied by both the pool and an open transaction, so state can
// be asserted from inside a test transaction too.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func SeatAvailable(t *testing.T, db Querier, seatID int64) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(), "SELECT is_available FROM seat_options WHERE seat_id = $1", seatID).Scan(&available)
	require.NoError(t, err)
	return available
}

func CountRows(t *testing.T, db Querier, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// QueuedTopics lists the outbox topics in insertion order.
func QueuedTopics(t *testing.T, db Querier) []string {
	t.Helper()

	ctx := context.Background()
	var topics []string
	err := db.QueryRow(ctx, "SELECT coalesce(array_agg(topic ORDER BY created_at, id), '{}') FROM notification_jobs WHERE status = 'queued'").Scan(&topics)
	require.NoError(t, err)
	return topics
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
