package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stelwing-booking/internal/pkg/errs"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// BookingCursor points just past the last row of a page, newest first.
type BookingCursor struct {
	CreatedAt time.Time
	ID        int64
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id int64) string {
	cursorData := fmt.Sprintf("%s:%d-%d", CursorVersionV1, t.UnixMicro(), id)
	return base64.RawURLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (*BookingCursor, error) {
	if cursor == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: not base64url", ErrInvalidCursor)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return nil, fmt.Errorf("%w: unknown version", ErrInvalidCursor)
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return nil, fmt.Errorf("%w: expected '<micros>-<id>'", ErrInvalidCursor)
	}

	timestamp, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp: %v", ErrInvalidCursor, err)
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: id %q", ErrInvalidCursor, rawID)
	}

	return &BookingCursor{CreatedAt: time.UnixMicro(timestamp).UTC(), ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
