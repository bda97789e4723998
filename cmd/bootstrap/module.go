package bootstrap

import (
	"go.uber.org/fx"

	"member-rewards/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
