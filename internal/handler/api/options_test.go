//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"stelwing-booking/internal/handler/api"
	resdto "stelwing-booking/internal/handler/dto/response"
	"stelwing-booking/internal/usecase/queries"
	"stelwing-booking/tests/common/httptest"
	queriesmock "stelwing-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OptionsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOptionQueries
}

func (s *OptionsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOptionQueries(s.mockCtrl)
	handler := api.NewOptionsHandler(s.mockQueries)

	s.router.GET(bookingURL+"/seat-options", handler.Seats)
	s.router.GET(bookingURL+"/meal-options", handler.Meals)
	s.router.GET(bookingURL+"/baggage-options", handler.Baggage)
}

func (s *OptionsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOptionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(OptionsHandlerTestSuite))
}

func (s *OptionsHandlerTestSuite) TestSeats() {
	s.Run("success: seat map of the flight", func() {
		s.mockQueries.EXPECT().SeatOptions(gomock.Any(), int64(1)).Return([]queries.SeatView{
			{ID: 11, FlightID: 1, SeatNumber: "12A", CabinClass: "economy", IsAvailable: true},
			{ID: 12, FlightID: 1, SeatNumber: "12B", CabinClass: "economy"},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bookingURL+"/seat-options?flightId=1", nil, "")

		var body []resdto.SeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.SeatResponse{
			{ID: 11, FlightID: 1, SeatNumber: "12A", CabinClass: "economy", IsAvailable: true},
			{ID: 12, FlightID: 1, SeatNumber: "12B", CabinClass: "economy"},
		}, body)
	})

	s.Run("success: unknown flight renders an empty array", func() {
		s.mockQueries.EXPECT().SeatOptions(gomock.Any(), int64(404)).Return([]queries.SeatView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bookingURL+"/seat-options?flightId=404", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	for _, query := range []string{"", "?flightId=", "?flightId=abc", "?flightId=0", "?flightId=-4"} {
		s.Run("error: 400 for flightId "+query, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bookingURL+"/seat-options"+query, nil, "")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid flightId")
		})
	}

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().SeatOptions(gomock.Any(), int64(1)).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bookingURL+"/seat-options?flightId=1", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load seat options")
	})
}

func (s *OptionsHandlerTestSuite) TestMealsAndBaggage() {
	s.Run("success: meals", func() {
		s.mockQueries.EXPECT().MealOptions(gomock.Any()).Return([]queries.MealView{{ID: 31, Code: "VGML", Name: "Vegetarian", Price: 350}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bookingURL+"/meal-options", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[{"id":31,"code":"VGML","name":"Vegetarian","price":350}]`, rec.Body.String())
	})

	s.Run("success: baggage", func() {
		s.mockQueries.EXPECT().BaggageOptions(gomock.Any()).Return([]queries.BaggageView{{ID: 41, WeightKg: 20, Price: 1200}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bookingURL+"/baggage-options", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[{"id":41,"weightKg":20,"price":1200}]`, rec.Body.String())
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().MealOptions(gomock.Any()).Return(nil, errors.New("boom"))
		s.mockQueries.EXPECT().BaggageOptions(gomock.Any()).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, bookingURL+"/meal-options", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load meal options")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, bookingURL+"/baggage-options", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load baggage options")
	})
}
