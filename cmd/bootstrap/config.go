package bootstrap

import (
	"reservation-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		func() (config.Config, error) {
			return config.Load("")
		},
	),
)
