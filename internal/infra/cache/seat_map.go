package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"stelwing-booking/internal/pkg/errs"
	"stelwing-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	seatMapKeyPrefix = "seats:"
	genKeySuffix     = ":gen"
)

func SeatMapKey(flightID int64) string {
	return seatMapKeyPrefix + strconv.FormatInt(flightID, 10)
}

// SeatMapGenKey holds the flight's invalidation counter. It has no TTL.
func SeatMapGenKey(flightID int64) string {
	return SeatMapKey(flightID) + genKeySuffix
}

type seatMapEntry struct {
	Gen   int64              `json:"gen"`
	Seats []queries.SeatView `json:"seats"`
}

// RedisSeatMap caches seat maps as JSON with a short TTL. Commits and
// cancellations bump the flight generation and delete the map after their tx
// ends. An entry written under an older generation reads as a miss, and the
// TTL bounds staleness when an invalidation is lost.
type RedisSeatMap struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisSeatMap(client redis.Cmdable, ttl time.Duration) *RedisSeatMap {
	return &RedisSeatMap{client: client, ttl: ttl}
}

func (c *RedisSeatMap) Get(ctx context.Context, flightID int64) ([]queries.SeatView, int64, bool, error) {
	vals, err := c.client.MGet(ctx, SeatMapKey(flightID), SeatMapGenKey(flightID)).Result()
	if err != nil {
		return nil, 0, false, errs.Wrap(err, "redis get seat map")
	}

	var gen int64
	if s, ok := vals[1].(string); ok {
		if gen, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, 0, false, errs.Wrap(err, "decode seat map generation")
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, false, nil
	}
	var entry seatMapEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, gen, false, errs.Wrap(err, "decode seat map")
	}
	if entry.Gen != gen {
		return nil, gen, false, nil
	}
	return entry.Seats, gen, true, nil
}

func (c *RedisSeatMap) Set(ctx context.Context, flightID int64, gen int64, seats []queries.SeatView) error {
	raw, err := json.Marshal(seatMapEntry{Gen: gen, Seats: seats})
	if err != nil {
		return errs.Wrap(err, "encode seat map")
	}
	if err := c.client.Set(ctx, SeatMapKey(flightID), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set seat map")
	}
	return nil
}

func (c *RedisSeatMap) Invalidate(ctx context.Context, flightIDs ...int64) error {
	if len(flightIDs) == 0 {
		return nil
	}
	keys := make([]string, len(flightIDs))
	for i, id := range flightIDs {
		if err := c.client.Incr(ctx, SeatMapGenKey(id)).Err(); err != nil {
			return errs.Wrap(err, "redis bump seat map generation")
		}
		keys[i] = SeatMapKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "redis delete seat maps")
	}
	return nil
}

// NopSeatMap is used when Redis is disabled. Every read is a miss.
type NopSeatMap struct{}

func (NopSeatMap) Get(context.Context, int64) ([]queries.SeatView, int64, bool, error) {
	return nil, 0, false, nil
}

func (NopSeatMap) Set(context.Context, int64, int64, []queries.SeatView) error { return nil }

func (NopSeatMap) Invalidate(context.Context, ...int64) error { return nil }
