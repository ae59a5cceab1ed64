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

const manualBackup = "manual"

type AdminHandler struct {
	settingsCmds commands.SettingsCommands
	settings     queries.SettingsQueries
	backups      commands.BackupCommands
}

func NewAdminHandler(settingsCmds commands.SettingsCommands, settings queries.SettingsQueries, backups commands.BackupCommands) *AdminHandler {
	return &AdminHandler{settingsCmds: settingsCmds, settings: settings, backups: backups}
}

// @Summary Get system settings
// @Description Stored settings, or the defaults when none were saved
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[resdto.SettingsResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	view, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSettingsView(view)))
}

// @Summary Update system settings
// @Description Upserts the provided fields
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} resdto.Envelope[resdto.SettingsResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		respondBindError(c, err)
		return
	}

	saved, err := h.settingsCmds.Update(c.Request.Context(), actor, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage(resdto.FromSettingsView(queries.ToSettingsView(saved)), "Settings updated"))
}

// @Summary Run a backup
// @Description Export every application table to CSV under the backup directory
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.Envelope[resdto.BackupResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/backups [post]
func (h *AdminHandler) RunBackup(c *gin.Context) {
	result, err := h.backups.Run(c.Request.Context(), manualBackup)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OKWithMessage(resdto.FromBackupResult(result), "Backup completed"))
}

// @Summary List backups
// @Description Latest 10 backup runs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[[]resdto.BackupResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/backups [get]
func (h *AdminHandler) ListBackups(c *gin.Context) {
	items, err := h.settings.ListBackups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromBackupLogs(items)))
}
