package bootstrap

import (
	"go.uber.org/fx"

	"member-rewards/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
