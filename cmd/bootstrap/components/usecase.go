package components

import (
	"go.uber.org/fx"

	"dropdeck/internal/pkg/clock"
	"dropdeck/internal/usecase/commands"
	"dropdeck/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDropCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDropQueries,
		queries.NewSettingsQueries,
		queries.NewCatalogQueries,
	),
)
