package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Config             config.Config
	AuthHandler        *api.AuthHandler
	UserHandler        *api.UserHandler
	SalonHandler       *api.SalonHandler
	AppointmentHandler *api.AppointmentHandler
	DashboardHandler   *api.DashboardHandler
	AdminHandler       *api.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimiter        *middleware.RateLimiter
	Logger             *middleware.Logger
}

func NewRouter(engine *gin.Engine, p RouterParams) {
	setupMiddleware(engine, p)
	setupRoutes(engine, p)
}

func setupMiddleware(engine *gin.Engine, p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(p.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, p RouterParams) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()
	requireAdmin := p.AuthMiddleware.RequireAdmin()
	limited := []gin.HandlerFunc{p.RateLimiter.Handler()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.AuthHandler.Register, Mw: limited},
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		users := apiGroup.Group("/users/me")
		users.Use(requireAuth)
		{
			addRoutes(users, []route{
				{Method: http.MethodPut, Path: "", Handler: p.UserHandler.UpdateMe},
				{Method: http.MethodGet, Path: "/login-logs", Handler: p.UserHandler.LoginLogs},
			})
		}

		salons := apiGroup.Group("/salons")
		{
			addRoutes(salons, []route{
				{Method: http.MethodGet, Path: "", Handler: p.SalonHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.SalonHandler.Get},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: p.SalonHandler.Slots},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: p.SalonHandler.Availability},
			})

			owned := salons.Group("")
			owned.Use(requireAuth, requireAdmin)
			addRoutes(owned, []route{
				{Method: http.MethodPost, Path: "", Handler: p.SalonHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: p.SalonHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.SalonHandler.Delete},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(requireAuth)
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: p.AppointmentHandler.Book},
				{Method: http.MethodGet, Path: "", Handler: p.AppointmentHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: p.AppointmentHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: p.AppointmentHandler.UpdateStatus},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: p.DashboardHandler.Stats, Mw: []gin.HandlerFunc{requireAuth}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/salons", Handler: p.SalonHandler.ListOwned},
				{Method: http.MethodGet, Path: "/appointments", Handler: p.AppointmentHandler.ListForOwner},
				{Method: http.MethodGet, Path: "/settings", Handler: p.AdminHandler.GetSettings},
				{Method: http.MethodPut, Path: "/settings", Handler: p.AdminHandler.UpdateSettings},
				{Method: http.MethodPost, Path: "/backups", Handler: p.AdminHandler.RunBackup},
				{Method: http.MethodGet, Path: "/backups", Handler: p.AdminHandler.ListBackups},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
