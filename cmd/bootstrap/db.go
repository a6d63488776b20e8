package bootstrap

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"go.uber.org/fx"

	"github.com/d3coo/car-rental-backend/internal/infra/firestore"
	"github.com/d3coo/car-rental-backend/internal/pkg/config"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewFirestoreClient,
	),
)

func NewFirestoreClient(lc fx.Lifecycle, cfg config.Config) (*fs.Client, error) {
	client, cleanup, err := firestore.Connect(context.Background(), cfg.Firestore)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
