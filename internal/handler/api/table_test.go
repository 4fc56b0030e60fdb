//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/httptest"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TableHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
	handler     *api.TableHandler
}

func (s *TableHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewTableHandler(s.mockQueries)

	s.router.GET("/api/tables/:tableId/availability", s.handler.GetAvailability)
}

func (s *TableHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTableHandlerSuite(t *testing.T) {
	suite.Run(t, new(TableHandlerTestSuite))
}

func (s *TableHandlerTestSuite) TestGetAvailability() {
	s.Run("success: returns the slot list", func() {
		view := &queries.AvailabilityView{
			TableID: 1,
			Date:    "2026-03-01",
			Slots: []queries.AvailabilitySlotView{
				{StartTime: "10:00", EndTime: "12:00", Available: true},
				{StartTime: "12:00", EndTime: "14:00", Available: false},
			},
		}
		s.mockQueries.EXPECT().Availability(gomock.Any(), int64(1), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/tables/1/availability?date=2026-03-01", nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.TableID)
		s.Equal("2026-03-01", body.Date)
		s.Len(body.Slots, 2)
		s.False(body.Slots[1].Available)
	})

	s.Run("error: 400 when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/tables/1/availability", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date query parameter is required")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/tables/1/availability?date=garbage", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "valid ISO date")
	})

	s.Run("error: 400 on malformed table id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/tables/abc/availability?date=2026-03-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid table ID")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), int64(1), gomock.Any()).
			Return(nil, errors.New("io error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/tables/1/availability?date=2026-03-01", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
