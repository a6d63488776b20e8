package components

import (
	"go.uber.org/fx"

	"github.com/d3coo/car-rental-backend/internal/infra/firestore"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		firestore.NewCarRepository,
		firestore.NewUserRepository,
		firestore.NewBookingRepository,
		firestore.NewContractRepository,
		firestore.NewOfferRepository,
		firestore.NewWalletRepository,
	),
)
