//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stelwing-booking/internal/infra"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/pkg/errs"
	"stelwing-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type directRunner struct {
	calls int
}

func (r *directRunner) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	r.calls++
	return fn(ctx, nil)
}

type stubViewStore struct {
	byID      map[int64]*queries.ReservationView
	byLocator map[string]*queries.ReservationView
	summaries []queries.BookingSummary
	err       error

	gotAfter *queries.BookingCursor
	gotLimit int
}

func (s *stubViewStore) FindByID(_ context.Context, _ sqlc.DBTX, id int64) (*queries.ReservationView, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.byID[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (s *stubViewStore) FindByLocator(_ context.Context, _ sqlc.DBTX, locator string) (*queries.ReservationView, error) {
	if s.err != nil {
		return nil, s.err
	}
	if v, ok := s.byLocator[locator]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

// ListByMember serves summaries newest first, honouring the cursor like the SQL does.
func (s *stubViewStore) ListByMember(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, after *queries.BookingCursor, limit int) ([]queries.BookingSummary, error) {
	s.gotAfter, s.gotLimit = after, limit
	if s.err != nil {
		return nil, s.err
	}
	var out []queries.BookingSummary
	for _, b := range s.summaries {
		if after != nil && !b.CreatedAt.Before(after.CreatedAt) && !(b.CreatedAt.Equal(after.CreatedAt) && b.ID < after.ID) {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, b)
	}
	return out, nil
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	view := &queries.ReservationView{ID: 7, Locator: "ABC234", Status: "confirmed"}

	t.Run("found by id and locator in a read-only snapshot", func(t *testing.T) {
		runner := &directRunner{}
		store := &stubViewStore{
			byID:      map[int64]*queries.ReservationView{7: view},
			byLocator: map[string]*queries.ReservationView{"ABC234": view},
		}
		q := queries.NewBookingQueries(runner, store)

		got, err := q.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Same(t, view, got)

		got, err = q.GetByLocator(ctx, "ABC234")
		require.NoError(t, err)
		assert.Same(t, view, got)
		assert.Equal(t, 2, runner.calls)
	})

	t.Run("missing booking maps to ErrReservationNotFound", func(t *testing.T) {
		q := queries.NewBookingQueries(&directRunner{}, &stubViewStore{})

		_, err := q.GetByLocator(ctx, "ZZZ999")
		assert.True(t, errs.Is(err, queries.ErrReservationNotFound))

		_, err = q.GetByID(ctx, 404)
		assert.True(t, errs.Is(err, queries.ErrReservationNotFound))
	})

	t.Run("other failures pass through", func(t *testing.T) {
		boom := infra.WrapRepoErr("failed to find booking by locator", errors.New("boom"))
		q := queries.NewBookingQueries(&directRunner{}, &stubViewStore{err: boom})

		_, err := q.GetByLocator(ctx, "ABC234")
		require.Error(t, err)
		assert.False(t, errs.Is(err, queries.ErrReservationNotFound))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingQueries_ListByMember(t *testing.T) {
	ctx := context.Background()
	memberID := uuid.New()
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	// newest first; ids 4 and 3 share a timestamp
	summaries := []queries.BookingSummary{
		{ID: 5, Locator: "AAAAA5", CreatedAt: base.Add(3 * time.Minute)},
		{ID: 4, Locator: "AAAAA4", CreatedAt: base.Add(2 * time.Minute)},
		{ID: 3, Locator: "AAAAA3", CreatedAt: base.Add(2 * time.Minute)},
		{ID: 2, Locator: "AAAAA2", CreatedAt: base.Add(time.Minute)},
		{ID: 1, Locator: "AAAAA1", CreatedAt: base},
	}

	t.Run("pages through every booking once", func(t *testing.T) {
		store := &stubViewStore{summaries: summaries}
		q := queries.NewBookingQueries(&directRunner{}, store)

		var seen []int64
		after := ""
		for pages := 0; pages < 5; pages++ {
			page, err := q.ListByMember(ctx, memberID, after, 2)
			require.NoError(t, err)
			assert.Equal(t, 3, store.gotLimit)
			for _, b := range page.Items {
				seen = append(seen, b.ID)
			}
			if page.NextCursor == "" {
				break
			}
			after = page.NextCursor
		}
		assert.Equal(t, []int64{5, 4, 3, 2, 1}, seen)
	})

	t.Run("cursor round trip keeps microseconds", func(t *testing.T) {
		at := base.Add(1234567 * time.Microsecond)
		cursor, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, 42))
		require.NoError(t, err)
		assert.True(t, at.Equal(cursor.CreatedAt))
		assert.Equal(t, int64(42), cursor.ID)
	})

	t.Run("empty list renders an empty page", func(t *testing.T) {
		page, err := queries.NewBookingQueries(&directRunner{}, &stubViewStore{}).ListByMember(ctx, memberID, "", 0)
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		store := &stubViewStore{}
		q := queries.NewBookingQueries(&directRunner{}, store)

		_, err := q.ListByMember(ctx, memberID, "", 0)
		require.NoError(t, err)
		assert.Equal(t, queries.DefaultListLimit+1, store.gotLimit)

		_, err = q.ListByMember(ctx, memberID, "", 10_000)
		require.NoError(t, err)
		assert.Equal(t, queries.MaxListLimit+1, store.gotLimit)
	})

	for _, bad := range []string{"%%%", "djE6", "djI6MTIzLTQ", "djE6YWJjLTQ", "djE6MTIzLTA"} {
		t.Run("invalid cursor "+bad, func(t *testing.T) {
			store := &stubViewStore{summaries: summaries}
			_, err := queries.NewBookingQueries(&directRunner{}, store).ListByMember(ctx, memberID, bad, 2)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
			assert.Zero(t, store.gotLimit)
		})
	}

	t.Run("store failure passes through", func(t *testing.T) {
		boom := infra.WrapRepoErr("failed to list member bookings", errors.New("boom"))
		_, err := queries.NewBookingQueries(&directRunner{}, &stubViewStore{err: boom}).ListByMember(ctx, memberID, "", 2)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
