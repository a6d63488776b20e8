package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type bookingRepository struct {
	client *firestore.Client
}

func NewBookingRepository(client *firestore.Client) usecase.BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	snap, err := r.client.Collection(collBookings).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return decodeBooking(snap)
}

func (r *bookingRepository) List(ctx context.Context, filter usecase.BookingFilter) ([]*booking.Booking, error) {
	q := r.client.Collection(collBookings).Query
	if filter.UserID != "" {
		q = q.Where("user_id", "==", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("OrderStatus", "==", filter.Status.String())
	}
	q = q.OrderBy("created_at", firestore.Desc)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var bookings []*booking.Booking
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list bookings", err)
		}
		b, err := decodeBooking(snap)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) (string, error) {
	ref, _, err := r.client.Collection(collBookings).Add(ctx, bookingToDoc(b))
	if err != nil {
		return "", infra.WrapRepoErr("failed to create booking", err)
	}
	return ref.ID, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	_, err := r.client.Collection(collBookings).Doc(b.ID).Set(ctx, bookingToDoc(b))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update booking", err)
	}
	return nil
}

func decodeBooking(snap *firestore.DocumentSnapshot) (*booking.Booking, error) {
	var doc bookingDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking document", err, infra.KindBadDocument)
	}
	b, err := doc.toEntity(snap.Ref.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("booking document failed validation", err, infra.KindBadDocument)
	}
	return b, nil
}
