package components

import (
	"go.uber.org/fx"

	"member-rewards/internal/pkg/clock"
	"member-rewards/internal/usecase"
	"member-rewards/internal/usecase/commands"
	"member-rewards/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewMemberCommands,
		commands.NewPointsCommands,
		commands.NewRedemptionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPointsQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
