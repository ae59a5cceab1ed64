package api

import (
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard statistics
// @Description Booking totals; admins see every appointment, customers their own
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[resdto.DashboardResponse]
// @Failure 401 {object} httperr.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromDashboardStats(stats)))
}
