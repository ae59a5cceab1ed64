//go:build unit

package api_test

import (
	"testing"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase"
	"salon-booking/tests/common/authtest"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	customerID int64 = 2
	adminID    int64 = 1
)

// apiHarness mounts the real router and middleware over mocked usecases.
type apiHarness struct {
	router *gin.Engine
	jwt    *authtest.JWTHelper

	authCmds        *commandsmock.MockAuthCommands
	profileCmds     *commandsmock.MockProfileCommands
	salonCmds       *commandsmock.MockSalonCommands
	appointmentCmds *commandsmock.MockAppointmentCommands
	settingsCmds    *commandsmock.MockSettingsCommands
	backupCmds      *commandsmock.MockBackupCommands

	users        *queriesmock.MockUserQueries
	salons       *queriesmock.MockSalonQueries
	appointments *queriesmock.MockAppointmentQueries
	dashboard    *queriesmock.MockDashboardQueries
	settings     *queriesmock.MockSettingsQueries
}

func newAPIHarness(t *testing.T, ctrl *gomock.Controller) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	h := &apiHarness{
		router:          gin.New(),
		jwt:             authtest.NewJWTHelper(cfg.JWT),
		authCmds:        commandsmock.NewMockAuthCommands(ctrl),
		profileCmds:     commandsmock.NewMockProfileCommands(ctrl),
		salonCmds:       commandsmock.NewMockSalonCommands(ctrl),
		appointmentCmds: commandsmock.NewMockAppointmentCommands(ctrl),
		settingsCmds:    commandsmock.NewMockSettingsCommands(ctrl),
		backupCmds:      commandsmock.NewMockBackupCommands(ctrl),
		users:           queriesmock.NewMockUserQueries(ctrl),
		salons:          queriesmock.NewMockSalonQueries(ctrl),
		appointments:    queriesmock.NewMockAppointmentQueries(ctrl),
		dashboard:       queriesmock.NewMockDashboardQueries(ctrl),
		settings:        queriesmock.NewMockSettingsQueries(ctrl),
	}

	ttl, err := cfg.JWT.TokenDuration()
	require.NoError(t, err)
	validator := usecase.NewTokenValidator(h.jwt.Service(t))
	handler.NewRouter(h.router, handler.RouterParams{
		Config:             cfg,
		AuthHandler:        api.NewAuthHandler(h.authCmds, h.users, cfg.Cookie, ttl),
		UserHandler:        api.NewUserHandler(h.profileCmds, h.users),
		SalonHandler:       api.NewSalonHandler(h.salonCmds, h.salons, h.appointments),
		AppointmentHandler: api.NewAppointmentHandler(h.appointmentCmds, h.appointments),
		DashboardHandler:   api.NewDashboardHandler(h.dashboard),
		AdminHandler:       api.NewAdminHandler(h.settingsCmds, h.settings, h.backupCmds),
		AuthMiddleware:     middleware.NewAuthMiddleware(validator),
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimit),
		Logger:             middleware.NewLogger(cfg.Log),
	})
	return h
}

func (h *apiHarness) customerToken(t *testing.T) string {
	t.Helper()
	return h.jwt.GenerateToken(t, customerID, user.RoleCustomer)
}

func (h *apiHarness) adminToken(t *testing.T) string {
	t.Helper()
	return h.jwt.GenerateToken(t, adminID, user.RoleAdmin)
}
