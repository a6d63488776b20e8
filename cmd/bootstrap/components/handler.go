package components

import (
	"go.uber.org/fx"

	"github.com/d3coo/car-rental-backend/internal/handler"
	"github.com/d3coo/car-rental-backend/internal/handler/api"
	"github.com/d3coo/car-rental-backend/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCarHandler,
		api.NewBookingHandler,
		api.NewContractHandler,
		api.NewPricingHandler,
		api.NewWalletHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	car *api.CarHandler,
	booking *api.BookingHandler,
	contract *api.ContractHandler,
	pricing *api.PricingHandler,
	wallet *api.WalletHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Car:      car,
		Booking:  booking,
		Contract: contract,
		Pricing:  pricing,
		Wallet:   wallet,
	}
}
