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

type UserHandler struct {
	profile commands.ProfileCommands
	users   queries.UserQueries
}

func NewUserHandler(profile commands.ProfileCommands, users queries.UserQueries) *UserHandler {
	return &UserHandler{profile: profile, users: users}
}

// @Summary Update profile
// @Description Change name, email or phone. A new password requires the current one.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} resdto.Envelope[resdto.UserResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.profile.UpdateProfile(ctx, userID, req.ToCommand()); err != nil {
		respondError(c, err)
		return
	}

	view, err := h.users.GetCurrentUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage(resdto.FromUserView(view), "Profile updated"))
}

// @Summary List login history
// @Description Latest logins of the caller, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 10)"
// @Success 200 {object} resdto.Envelope[[]resdto.LoginLogResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users/me/login-logs [get]
func (h *UserHandler) LoginLogs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	items, err := h.users.ListLoginLogs(c.Request.Context(), userID, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromLoginLogs(items)))
}
