package components

import (
	"salon-booking/internal/infra/backup"
	"salon-booking/internal/infra/notifier"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

// InfraModule binds the outbound adapters to the ports the commands depend on.
var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			notifier.NewSendGridSender,
			fx.As(new(commands.EmailSender)),
		),
		fx.Annotate(
			notifier.NewTwilioSender,
			fx.As(new(commands.SMSSender)),
		),
		fx.Annotate(
			backup.NewExporter,
			fx.As(new(commands.TableExporter)),
		),
		fx.Annotate(
			func() *password.Hasher { return password.NewHasher(password.DefaultCost) },
			fx.As(new(commands.PasswordHasher)),
		),
	),
)
