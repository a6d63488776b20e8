package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/d3coo/car-rental-backend/internal/domain/offer"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type offerRepository struct {
	client *firestore.Client
}

func NewOfferRepository(client *firestore.Client) usecase.OfferRepository {
	return &offerRepository{client: client}
}

func (r *offerRepository) FindByID(ctx context.Context, id string) (*offer.Offer, error) {
	snap, err := r.client.Collection(collOffers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer", err)
	}
	return decodeOffer(snap)
}

func (r *offerRepository) FindByIDs(ctx context.Context, ids []string) ([]*offer.Offer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, r.client.Collection(collOffers).Doc(id))
	}
	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offers", err)
	}

	offers := make([]*offer.Offer, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			return nil, infra.WrapRepoErr("offer not found: "+snap.Ref.ID, nil, infra.KindNotFound)
		}
		o, err := decodeOffer(snap)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (r *offerRepository) ListActive(ctx context.Context) ([]*offer.Offer, error) {
	iter := r.client.Collection(collOffers).
		Where("active", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var offers []*offer.Offer
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list offers", err)
		}
		o, err := decodeOffer(snap)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func decodeOffer(snap *firestore.DocumentSnapshot) (*offer.Offer, error) {
	var doc offerDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode offer document", err, infra.KindBadDocument)
	}
	o, err := doc.toEntity(snap.Ref.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("offer document failed validation", err, infra.KindBadDocument)
	}
	return o, nil
}
