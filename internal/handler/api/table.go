package api

import (
	"errors"
	"net/http"
	"strconv"

	"tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	queries queries.ReservationQueries
}

func NewTableHandler(qrs queries.ReservationQueries) *TableHandler {
	return &TableHandler{queries: qrs}
}

// @Summary Table availability
// @Description Return the fixed slot list for a table and date with per-slot availability
// @Tags tables
// @Produce json
// @Param tableId path int true "Table ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /tables/{tableId}/availability [get]
func (h *TableHandler) GetAvailability(c *gin.Context) {
	tableID, err := strconv.ParseInt(c.Param("tableId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid table ID format", nil)
		return
	}
	if tableID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("table id must be positive"), "Invalid table ID format", nil)
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date query parameter is required", nil)
		return
	}

	date, err := reservation.ParseDate(query.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date must be a valid ISO date (YYYY-MM-DD)", nil)
		return
	}

	view, err := h.queries.Availability(c.Request.Context(), tableID, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
