package middleware

import (
	"log/slog"

	"salon-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// IdempotencyReplayedHeader marks a booking response served from a stored idempotent result.
const IdempotencyReplayedHeader = "Idempotency-Replayed"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	exposed := append([]string{}, cfg.ExposeHeaders...)
	exposed = append(exposed, requestIDHeader, IdempotencyReplayedHeader)
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
