package bootstrap

import (
	"go.uber.org/fx"

	"github.com/d3coo/car-rental-backend/internal/pkg/config"
	"github.com/d3coo/car-rental-backend/internal/pkg/jwt"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
