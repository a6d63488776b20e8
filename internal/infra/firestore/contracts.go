package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/d3coo/car-rental-backend/internal/domain/contract"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type contractRepository struct {
	client *firestore.Client
}

func NewContractRepository(client *firestore.Client) usecase.ContractRepository {
	return &contractRepository{client: client}
}

func (r *contractRepository) FindByID(ctx context.Context, id string) (*contract.Contract, error) {
	snap, err := r.client.Collection(collContracts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get contract", err)
	}
	return decodeContract(snap)
}

func (r *contractRepository) FindByBookingID(ctx context.Context, bookingID string) (*contract.Contract, error) {
	iter := r.client.Collection(collContracts).
		Where("booking_id", "==", bookingID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query contract by booking", err)
	}
	return decodeContract(snap)
}

func (r *contractRepository) List(ctx context.Context, filter usecase.ContractFilter) ([]*contract.Contract, error) {
	q := r.client.Collection(collContracts).Query
	if filter.UserID != "" {
		q = q.Where("user_id", "==", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("ContractStatus", "==", filter.Status.String())
	}
	q = q.OrderBy("created_at", firestore.Desc)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var contracts []*contract.Contract
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list contracts", err)
		}
		c, err := decodeContract(snap)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

func (r *contractRepository) Create(ctx context.Context, c *contract.Contract) (string, error) {
	ref, _, err := r.client.Collection(collContracts).Add(ctx, contractToDoc(c))
	if err != nil {
		return "", infra.WrapRepoErr("failed to create contract", err)
	}
	return ref.ID, nil
}

func (r *contractRepository) Update(ctx context.Context, c *contract.Contract) error {
	_, err := r.client.Collection(collContracts).Doc(c.ID).Set(ctx, contractToDoc(c))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update contract", err)
	}
	return nil
}

func decodeContract(snap *firestore.DocumentSnapshot) (*contract.Contract, error) {
	var doc contractDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode contract document", err, infra.KindBadDocument)
	}
	c, err := doc.toEntity(snap.Ref.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("contract document failed validation", err, infra.KindBadDocument)
	}
	return c, nil
}
