package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/d3coo/car-rental-backend/internal/domain/car"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type carRepository struct {
	client *firestore.Client
}

func NewCarRepository(client *firestore.Client) usecase.CarRepository {
	return &carRepository{client: client}
}

func (r *carRepository) FindByID(ctx context.Context, id string) (*car.Car, error) {
	snap, err := r.client.Collection(collCars).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get car", err)
	}
	var doc carDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode car document", err, infra.KindBadDocument)
	}
	c, err := doc.toEntity(snap.Ref.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("car document failed validation", err, infra.KindBadDocument)
	}
	return c, nil
}

func (r *carRepository) List(ctx context.Context, filter usecase.CarFilter) ([]*car.Car, error) {
	q := r.client.Collection(collCars).Query
	if filter.Status != "" {
		q = q.Where("status", "==", filter.Status.String())
	}
	if filter.Category != "" {
		q = q.Where("category", "==", filter.Category)
	}
	if filter.Location != "" {
		q = q.Where("location", "==", filter.Location)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var cars []*car.Car
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list cars", err)
		}
		var doc carDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode car document", err, infra.KindBadDocument)
		}
		c, err := doc.toEntity(snap.Ref.ID)
		if err != nil {
			return nil, infra.WrapRepoErr("car document failed validation", err, infra.KindBadDocument)
		}
		cars = append(cars, c)
	}
	return cars, nil
}

func (r *carRepository) Create(ctx context.Context, c *car.Car) (string, error) {
	ref, _, err := r.client.Collection(collCars).Add(ctx, carToDoc(c))
	if err != nil {
		return "", infra.WrapRepoErr("failed to create car", err)
	}
	return ref.ID, nil
}

func (r *carRepository) Update(ctx context.Context, c *car.Car) error {
	_, err := r.client.Collection(collCars).Doc(c.ID).Set(ctx, carToDoc(c))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update car", err)
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collCars).Doc(id).Delete(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	return nil
}
