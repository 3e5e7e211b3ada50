//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stelwing-booking/internal/handler/httperr"
	"stelwing-booking/internal/handler/middleware"
	"stelwing-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStackRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("seat map is nil") })
	r.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("seat taken"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.New(c, http.StatusConflict, "seat_unavailable", "Seat is no longer available", nil),
		})
	})
	r.GET("/silent", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	r.GET("/flight-booking/:pnr", func(c *gin.Context) {
		httperr.AbortWithCode(c, http.StatusNotFound, "not_found", errors.New("no rows"), "Booking not found", nil)
	})
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httperr.Response {
	t.Helper()
	var resp httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()
	newStackRouter(&logs).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "internal", resp.Error.Code)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), resp.RequestID)
	assert.Contains(t, logs.String(), "recovered from panic")
	assert.Contains(t, logs.String(), "seat map is nil")
}

func TestErrorHandler(t *testing.T) {
	router := newStackRouter(&bytes.Buffer{})

	t.Run("public error recorded without a body is rendered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "seat_unavailable", resp.Error.Code)
		assert.Equal(t, "Seat is no longer available", resp.Error.Message)
	})

	t.Run("private error becomes a generic 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/silent", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeError(t, rec).Error.Message)
	})
}

func TestRequestLogger(t *testing.T) {
	t.Run("caller request id is echoed and logged with the pnr", func(t *testing.T) {
		var logs bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/flight-booking/ABC234", nil)
		req.Header.Set("X-Request-ID", "trace-123")
		rec := httptest.NewRecorder()

		newStackRouter(&logs).ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "trace-123", decodeError(t, rec).RequestID)

		lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
		var completed map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &completed))
		assert.Equal(t, "request completed", completed["msg"])
		assert.Equal(t, "WARN", completed["level"])
		assert.Equal(t, "ABC234", completed["pnr"])
		assert.EqualValues(t, http.StatusNotFound, completed["status_code"])
	})

	t.Run("oversized request id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/flight-booking/ABC234", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("x", 65))
		rec := httptest.NewRecorder()

		newStackRouter(&bytes.Buffer{}).ServeHTTP(rec, req)

		got := rec.Header().Get("X-Request-ID")
		assert.NotEmpty(t, got)
		assert.NotEqual(t, strings.Repeat("x", 65), got)
	})
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"https://stelwing.example"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"content-type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	r.POST("/api/flight-booking", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/flight-booking", nil)
	req.Header.Set("Origin", "https://stelwing.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), "idempotency-key")

	req = httptest.NewRequest(http.MethodPost, "/api/flight-booking", nil)
	req.Header.Set("Origin", "https://stelwing.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "location")
	assert.Contains(t, exposed, "idempotent-replayed")
}

func TestRequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestTimeout(time.Minute))
	r.GET("/deadline", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, "%d", int(time.Until(deadline).Round(time.Minute)/time.Minute))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deadline", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Body.String())
}
