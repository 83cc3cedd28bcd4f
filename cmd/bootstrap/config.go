package bootstrap

import (
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
