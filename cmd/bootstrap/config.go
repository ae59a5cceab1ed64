package bootstrap

import (
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigParts,
)

// ConfigParts exposes the sections of config.Config that constructors take directly.
var ConfigParts = fx.Provide(
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
	func(cfg config.Config) config.BackupConfig { return cfg.Backup },
	func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
	func(cfg config.Config) config.SendGridConfig { return cfg.SendGrid },
	func(cfg config.Config) config.TwilioConfig { return cfg.Twilio },
)
