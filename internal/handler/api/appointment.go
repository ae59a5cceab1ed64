package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var errInvalidIdempotencyKey = errs.New("idempotency key must be a UUID")

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Reserve one place in a salon slot for the caller. Repeating a request with the same Idempotency-Key replays the first result.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID identifying this booking attempt"
// @Param request body reqdto.BookAppointmentRequest true "Booking"
// @Success 201 {object} resdto.Envelope[resdto.AppointmentResponse]
// @Success 200 {object} resdto.Envelope[resdto.AppointmentResponse] "Replayed result"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var idempotencyKey *uuid.UUID
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidIdempotencyKey), "Invalid Idempotency-Key header", nil)
			return
		}
		idempotencyKey = &key
	}

	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), req.ToCommand(actor.ID), idempotencyKey)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header(middleware.IdempotencyReplayedHeader, "true")
	}
	c.JSON(status, resdto.OKWithMessage(resdto.FromAppointmentView(result.Appointment), "Appointment booked successfully"))
}

// @Summary List own appointments
// @Description Appointments booked by the caller, newest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[[]resdto.AppointmentResponse]
// @Failure 401 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	items, err := h.q.ListForCustomer(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromAppointmentList(items)))
}

// @Summary Get appointment
// @Description Visible to the customer who booked it and to the salon owner
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} resdto.Envelope[resdto.AppointmentResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromAppointmentView(view)))
}

// @Summary Change appointment status
// @Description Customers may cancel their own booking; the salon owner may complete or cancel it. Completed and canceled are final and past appointments are frozen.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.Envelope[resdto.AppointmentResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.cmds.SetStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage(resdto.FromAppointmentView(view), "Appointment status updated"))
}

// @Summary List appointments of own salons
// @Description Appointments across the salons owned by the calling admin, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "booked, completed or canceled"
// @Param date query string false "YYYY-MM-DD"
// @Param salonId query int false "Salon ID"
// @Success 200 {object} resdto.Envelope[[]resdto.AppointmentResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/appointments [get]
func (h *AppointmentHandler) ListForOwner(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var q reqdto.OwnerAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	items, err := h.q.ListForOwner(c.Request.Context(), actor.ID, queries.AppointmentFilter{
		Status:  q.Status,
		Date:    q.Date,
		SalonID: q.SalonID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromAppointmentList(items)))
}
