package bootstrap

import (
	"go.uber.org/fx"

	"github.com/d3coo/car-rental-backend/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
