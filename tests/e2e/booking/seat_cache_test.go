//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"

	resdto "stelwing-booking/internal/handler/dto/response"
	"stelwing-booking/internal/infra/cache"
	"stelwing-booking/internal/usecase/queries"
	"stelwing-booking/tests/common/dbtest"
	"stelwing-booking/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SeatCacheSuite reruns the booking flow with the Redis seat-map cache enabled
// and adds the cache-specific cases.
type SeatCacheSuite struct {
	BookingSuite
}

func TestSeatCacheSuite(t *testing.T) {
	t.Parallel()
	s := new(SeatCacheSuite)
	s.UseRedis = true
	suite.Run(t, s)
}

func (s *SeatCacheSuite) seatMap(t *testing.T) map[int64]bool {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL+"/seat-options?flightId=1", nil, "")
	var seats []resdto.SeatResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &seats)

	out := make(map[int64]bool, len(seats))
	for _, seat := range seats {
		out[seat.ID] = seat.IsAvailable
	}
	return out
}

func (s *SeatCacheSuite) TestInvalidation() {
	s.Run("Normal case: commit evicts the cached seat map", func() {
		t := s.T()
		ctx := context.Background()

		require.True(t, s.seatMap(t)[dbtest.SeatOutbound12A])
		n, err := s.Redis.Exists(ctx, "seats:1").Result()
		require.NoError(t, err)
		require.EqualValues(t, 1, n, "first read fills the cache")

		code, created, w := s.create(oneWay(dbtest.SeatOutbound12A).BuildDTO(), "", nil)
		require.Equal(t, http.StatusCreated, code, w.Body.String())

		assert.False(t, s.seatMap(t)[dbtest.SeatOutbound12A])

		// guest bookings can be cancelled by any member
		token := s.jwt.GenerateToken(t, uuid.New())
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL+"/"+created.PNR+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		assert.True(t, s.seatMap(t)[dbtest.SeatOutbound12A], "cancel evicts the cache too")
	})

	s.Run("Normal case: rejected commit leaves the cache untouched", func() {
		t := s.T()
		ctx := context.Background()

		code, _, w := s.create(oneWay(dbtest.SeatOutbound12B).BuildDTO(), "", nil)
		require.Equal(t, http.StatusCreated, code, w.Body.String())
		require.False(t, s.seatMap(t)[dbtest.SeatOutbound12B])

		code, _, _ = s.create(oneWay(dbtest.SeatOutbound12B).BuildDTO(), "", nil)
		require.Equal(t, http.StatusConflict, code)

		n, err := s.Redis.Exists(ctx, "seats:1").Result()
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})
	s.Run("Edge case: a seat map loaded before a commit is not served after it", func() {
		t := s.T()
		ctx := context.Background()
		seatMaps := cache.NewRedisSeatMap(s.Redis, s.Config.Redis.SeatMapTTL)

		// A reader misses and loads the seats while the seat is still free.
		_, gen, hit, err := seatMaps.Get(ctx, 1)
		require.NoError(t, err)
		require.False(t, hit)
		before := []queries.SeatView{{ID: dbtest.SeatOutbound12A, FlightID: 1, SeatNumber: "12A", CabinClass: "economy", IsAvailable: true}}

		code, _, w := s.create(oneWay(dbtest.SeatOutbound12A).BuildDTO(), "", nil)
		require.Equal(t, http.StatusCreated, code, w.Body.String())

		// Its write lands after the commit's invalidation.
		require.NoError(t, seatMaps.Set(ctx, 1, gen, before))

		_, _, hit, err = seatMaps.Get(ctx, 1)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.False(t, s.seatMap(t)[dbtest.SeatOutbound12A])
	})
}
