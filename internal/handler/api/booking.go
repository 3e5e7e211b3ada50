package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	reqdto "stelwing-booking/internal/handler/dto/request"
	resdto "stelwing-booking/internal/handler/dto/response"
	"stelwing-booking/internal/handler/httperr"
	"stelwing-booking/internal/handler/middleware"
	"stelwing-booking/internal/pkg/errs"
	"stelwing-booking/internal/usecase/commands"
	"stelwing-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey     = "Idempotency-Key"
	headerIdempotentReplayed = "Idempotent-Replayed"
	bookingBasePath          = "/api/flight-booking/"
)

var errInvalidIdempotencyKey = errors.New("idempotency key must be a UUID")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book every segment of the request or nothing. Seats are claimed atomically.
// @Tags flight-booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID) for safe retries"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /flight-booking [post]
func (h *BookingHandler) Create(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key header", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", bindErr.Error())
		return
	}

	in := commands.CommitInput{Request: req, IdempotencyKey: key}
	if memberID, ok := middleware.GetMemberID(c); ok {
		in.MemberID = &memberID
	}

	result, err := h.cmds.Commit(c.Request.Context(), in)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	c.Header("Location", bookingBasePath+result.Locator)
	view := result.Reservation
	if view == nil {
		c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{ID: result.BookingID, PNR: result.Locator, Status: "confirmed"})
		return
	}
	if result.IsReplayed {
		c.Header(headerIdempotentReplayed, "true")
		c.JSON(http.StatusOK, resdto.FromReservationView(view))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get booking
// @Description Full reservation graph by PNR
// @Tags flight-booking
// @Produce json
// @Param pnr path string true "Booking locator"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /flight-booking/{pnr} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByLocator(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel booking
// @Description Release every seat of the booking and mark it cancelled
// @Tags flight-booking
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "Booking locator"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /flight-booking/{pnr}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("member id missing from context"), "Unauthorized", nil)
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), c.Param("pnr"), memberID)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my bookings
// @Description Bookings of the authenticated member, newest first
// @Tags flight-booking
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 100)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /members/me/flight-bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("member id missing from context"), "Unauthorized", nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			if err == nil {
				err = errors.New("limit must be positive")
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	page, err := h.q.ListByMember(c.Request.Context(), memberID, c.Query("after"), limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(headerIdempotencyKey)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errInvalidIdempotencyKey
	}
	return &key, nil
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var bookingErrorMappings = []errorMapping{
	{commands.ErrDomainValidation, http.StatusBadRequest, "invalid_booking", "Invalid booking"},
	{commands.ErrFlightNotFound, http.StatusNotFound, "flight_not_found", "Flight not found"},
	{commands.ErrSeatNotFound, http.StatusNotFound, "seat_not_found", "Seat not found"},
	{commands.ErrMealNotFound, http.StatusNotFound, "meal_not_found", "Meal option not found"},
	{commands.ErrBaggageNotFound, http.StatusNotFound, "baggage_not_found", "Baggage option not found"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "booking_not_found", "Booking not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "booking_not_found", "Booking not found"},
	{commands.ErrSeatFlightMismatch, http.StatusUnprocessableEntity, "seat_flight_mismatch", "Seat does not belong to the flight"},
	{commands.ErrSeatUnavailable, http.StatusConflict, "seat_unavailable", "Seat is no longer available"},
	{commands.ErrIdempotencyKeyReused, http.StatusConflict, "idempotency_key_reused", "Idempotency key was used for a different request"},
	{commands.ErrReservationCancelled, http.StatusConflict, "booking_cancelled", "Booking is already cancelled"},
	{commands.ErrSeatNotClaimed, http.StatusConflict, "seat_not_claimed", "Booking seats are out of sync"},
	{commands.ErrNotReservationOwner, http.StatusForbidden, "not_booking_owner", "Booking belongs to another member"},
	{commands.ErrLocatorExhausted, http.StatusServiceUnavailable, "locator_exhausted", "Could not allocate a booking reference"},
	{commands.ErrPersistenceFailure, http.StatusServiceUnavailable, "persistence_failure", "Booking could not be saved, please retry"},
}

func abortWithBookingError(c *gin.Context, err error) {
	for _, m := range bookingErrorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		if m.target == commands.ErrLocatorExhausted {
			slog.Error("locator allocation exhausted", "request_id", middleware.GetRequestID(c), "error", err)
		}
		httperr.AbortWithCode(c, m.status, m.code, err, m.message, bookingErrorDetail(err, m.target))
		return
	}
	httperr.AbortWithCode(c, http.StatusInternalServerError, "internal", err, "Internal server error", nil)
}

func bookingErrorDetail(err, target error) any {
	detail := gin.H{}
	if reasons := errs.Details(err); len(reasons) > 0 {
		detail["reasons"] = reasons
	}
	if target == commands.ErrPersistenceFailure {
		detail["retryable"] = true
	}
	if len(detail) == 0 {
		return nil
	}
	return detail
}

type OptionsHandler struct {
	q queries.OptionQueries
}

func NewOptionsHandler(q queries.OptionQueries) *OptionsHandler {
	return &OptionsHandler{q: q}
}

// @Summary Seat options
// @Description Seat map of one flight
// @Tags flight-booking
// @Produce json
// @Param flightId query int true "Flight ID"
// @Success 200 {array} resdto.SeatResponse
// @Failure 400 {object} httperr.Response
// @Router /flight-booking/seat-options [get]
func (h *OptionsHandler) Seats(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Query("flightId"), 10, 64)
	if err != nil || flightID <= 0 {
		if err == nil {
			err = errors.New("flightId must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid flightId", nil)
		return
	}

	seats, err := h.q.SeatOptions(c.Request.Context(), flightID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load seat options", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeatViews(seats))
}

// @Summary Meal options
// @Tags flight-booking
// @Produce json
// @Success 200 {array} resdto.MealResponse
// @Router /flight-booking/meal-options [get]
func (h *OptionsHandler) Meals(c *gin.Context) {
	meals, err := h.q.MealOptions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load meal options", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMealViews(meals))
}

// @Summary Baggage options
// @Tags flight-booking
// @Produce json
// @Success 200 {array} resdto.BaggageResponse
// @Router /flight-booking/baggage-options [get]
func (h *OptionsHandler) Baggage(c *gin.Context) {
	bags, err := h.q.BaggageOptions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load baggage options", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBaggageViews(bags))
}
