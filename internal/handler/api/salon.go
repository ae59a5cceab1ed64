package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SalonHandler struct {
	cmds         commands.SalonCommands
	q            queries.SalonQueries
	appointments queries.AppointmentQueries
}

func NewSalonHandler(cmds commands.SalonCommands, q queries.SalonQueries, appointments queries.AppointmentQueries) *SalonHandler {
	return &SalonHandler{cmds: cmds, q: q, appointments: appointments}
}

// @Summary List salons
// @Description Public salon listing with optional filters
// @Tags salons
// @Produce json
// @Param city query string false "City"
// @Param offerStatus query string false "active or inactive"
// @Param sortBy query string false "name, minPrice, maxPrice or createdAt"
// @Param limit query int false "Max items (default 50)"
// @Param offset query int false "Items to skip"
// @Success 200 {object} resdto.Envelope[[]resdto.SalonResponse]
// @Failure 400 {object} httperr.Response
// @Router /salons [get]
func (h *SalonHandler) List(c *gin.Context) {
	var q reqdto.ListSalonsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	items, err := h.q.List(c.Request.Context(), queries.SalonFilter{
		City:        q.City,
		OfferStatus: q.OfferStatus,
		SortBy:      q.SortBy,
		Limit:       q.Limit,
		Offset:      q.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSalonList(items)))
}

// @Summary Get salon
// @Tags salons
// @Produce json
// @Param id path int true "Salon ID"
// @Success 200 {object} resdto.Envelope[resdto.SalonResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /salons/{id} [get]
func (h *SalonHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSalonView(view)))
}

// @Summary Create salon
// @Description Admin only; the caller becomes the owner
// @Tags salons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSalonRequest true "Salon"
// @Success 201 {object} resdto.Envelope[resdto.SalonResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /salons [post]
func (h *SalonHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	in, err := req.ToCommand()
	if err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	id, err := h.cmds.Create(ctx, actor, in)
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OKWithMessage(resdto.FromSalonView(view), "Salon created"))
}

// @Summary Update salon
// @Description Owner only; omitted fields keep their value
// @Tags salons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Salon ID"
// @Param request body reqdto.UpdateSalonRequest true "Fields to change"
// @Success 200 {object} resdto.Envelope[resdto.SalonResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /salons/{id} [put]
func (h *SalonHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	patch, err := req.ToCommand()
	if err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.cmds.Update(ctx, actor, id, patch); err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage(resdto.FromSalonView(view), "Salon updated"))
}

// @Summary Delete salon
// @Description Owner only; refused while booked appointments from today onward exist
// @Tags salons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Salon ID"
// @Success 200 {object} resdto.Envelope[any]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /salons/{id} [delete]
func (h *SalonHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage[any](nil, "Salon deleted"))
}

// @Summary List bookable slots
// @Description Slot labels for a date; empty on a non-working day
// @Tags salons
// @Produce json
// @Param id path int true "Salon ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.Envelope[resdto.SlotsResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /salons/{id}/slots [get]
func (h *SalonHandler) Slots(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var q reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	view, err := h.q.Slots(c.Request.Context(), id, q.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSlotsView(view)))
}

// @Summary Check slot availability
// @Description Remaining capacity of one slot; a full slot answers 409 "No available slots"
// @Tags salons
// @Produce json
// @Param id path int true "Salon ID"
// @Param date query string true "YYYY-MM-DD"
// @Param time query string true "Slot label, e.g. 9:00 AM"
// @Success 200 {object} resdto.Envelope[resdto.AvailabilityResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /salons/{id}/availability [get]
func (h *SalonHandler) Availability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	view, err := h.appointments.CheckAvailability(c.Request.Context(), id, q.Date, q.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromAvailabilityView(view)))
}

// @Summary List own salons
// @Description Salons owned by the calling admin
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[[]resdto.SalonResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/salons [get]
func (h *SalonHandler) ListOwned(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	items, err := h.q.ListByOwner(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSalonList(items)))
}
