package bootstrap

import (
	"go.uber.org/fx"

	"dropdeck/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	EngineModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
