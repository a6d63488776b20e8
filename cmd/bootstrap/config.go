package bootstrap

import (
	"go.uber.org/fx"

	"github.com/d3coo/car-rental-backend/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
