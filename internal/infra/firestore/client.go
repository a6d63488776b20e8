package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/d3coo/car-rental-backend/internal/pkg/config"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// Collection names as they exist in the production Firestore project.
// The casing is inherited from the legacy schema and must not change.
const (
	collCars      = "Cars"
	collUsers     = "users"
	collBookings  = "Bookings"
	collContracts = "Contracts"
	collOffers    = "Offers"

	subcollTransactions = "Transaction_history"
)

// Connect initializes the Firebase app and returns its Firestore client
// with a cleanup func. With FIRESTORE_EMULATOR_HOST set, the client
// library talks to the emulator and credentials are not needed.
func Connect(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, func(), error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create firestore client")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
