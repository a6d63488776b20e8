package components

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(logger *slog.Logger) *pricing.Service {
			return pricing.NewService(logger)
		},
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewCarUseCase,
		usecase.NewPricingUseCase,
		usecase.NewBookingUseCase,
		usecase.NewContractUseCase,
		usecase.NewWalletUseCase,
	),
)
