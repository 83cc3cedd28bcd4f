package bootstrap

import (
	"github.com/ferdinandetchu/real-estate-cameroon/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	SeedModule,
)
