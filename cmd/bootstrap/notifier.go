package bootstrap

import (
	"go.uber.org/fx"

	"member-rewards/internal/notifier"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			notifier.NewLogNotifier,
			fx.As(new(notifier.Notifier)),
		),
	),
)
