package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"stelwing-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

// RequestLogger tags every request with an id (the caller's X-Request-ID when
// sane) and logs one line when it starts and one when it completes.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = newRequestID(start)
		}
		c.Set(httperr.RequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}
		logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		// auth runs on route groups, so the member is only known after Next
		if memberID, ok := GetMemberID(c); ok {
			attrs = append(attrs, slog.String("member_id", memberID.String()))
		}
		if pnr := c.Param("pnr"); pnr != "" {
			attrs = append(attrs, slog.String("pnr", pnr))
		}
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		logger.LogAttrs(c.Request.Context(), level, "request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(httperr.RequestIDKey)
}

func newRequestID(now time.Time) string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return now.UTC().Format("20060102150405.000000")
	}
	return now.UTC().Format("20060102150405") + "-" + hex.EncodeToString(b)
}
