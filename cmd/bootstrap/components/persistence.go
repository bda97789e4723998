package components

import (
	"go.uber.org/fx"

	"member-rewards/internal/infra/readstore"
	"member-rewards/internal/infra/uow"
	"member-rewards/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	uowModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
