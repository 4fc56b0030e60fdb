package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/handler/httperr"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
	clock    clock.Clock
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	qrs queries.ReservationQueries,
	clk clock.Clock,
) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrs,
		clock:    clk,
	}
}

// @Summary Create reservation
// @Description Book a table for a fixed 2-hour slot
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", bindingMessages(err))
		return
	}

	today := reservation.DateOf(h.clock.Now())
	if msgs := req.Validate(today); len(msgs) > 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("structural validation failed"), "Validation failed", msgs)
		return
	}

	view, err := h.commands.CreateReservation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTableNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Table not found", nil)
		case errors.Is(err, commands.ErrTableInactive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Table is not active", nil)
		case errors.Is(err, commands.ErrCapacityExceeded):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest count exceeds table capacity", nil)
		case errors.Is(err, commands.ErrSlotNotBookable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot is outside operating hours", nil)
		case errors.Is(err, commands.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is already booked for this table and date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List reservations with optional filters and pagination
// @Tags reservations
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param table_id query int false "Filter by table"
// @Param status query string false "Filter by status" Enums(confirmed, cancelled)
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 50)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", bindingMessages(err))
		return
	}

	filter, err := buildListFilter(query)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	page, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationPage(page))
}

// @Summary Get reservation
// @Description Fetch a reservation enriched with a best-effort table snapshot
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := parseReservationID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	detail, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationDetailView(detail))
}

// @Summary Cancel reservation
// @Description Cancel a confirmed reservation at least 1 hour before its slot
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations/{id}/cancel [patch]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := parseReservationID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.commands.CancelReservation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation is already cancelled", nil)
		case errors.Is(err, commands.ErrCancellationWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservations can only be cancelled at least 1 hour before the slot", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func parseReservationID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func buildListFilter(query reqdto.ListReservationsQuery) (queries.ListFilter, error) {
	filter := queries.ListFilter{
		TableID: query.TableID,
		Page:    query.Page,
		Limit:   query.Limit,
	}

	if query.Date != nil {
		date, err := reservation.ParseDate(*query.Date)
		if err != nil {
			return queries.ListFilter{}, errors.New("date must be a valid ISO date (YYYY-MM-DD)")
		}
		filter.Date = &date
	}

	if query.Status != nil {
		status := reservation.Status(*query.Status)
		filter.Status = &status
	}

	return filter, nil
}

// bindingMessages flattens validator errors into per-field messages.
func bindingMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"request body is malformed"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return msgs
}
