package components

import (
	"time"

	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(s *jwt.Service) time.Duration { return s.TokenDuration() },
			fx.ResultTags(`name:"token_ttl"`),
		),
		fx.Annotate(
			api.NewAuthHandler,
			fx.ParamTags(``, ``, ``, `name:"token_ttl"`),
		),
		api.NewUserHandler,
		api.NewSalonHandler,
		api.NewAppointmentHandler,
		api.NewDashboardHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
