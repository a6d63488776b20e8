package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/d3coo/car-rental-backend/internal/domain/user"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) usecase.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	snap, err := r.client.Collection(collUsers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return decodeUser(snap)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, string, error) {
	iter := r.client.Collection(collUsers).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to query user by email", err)
	}

	u, err := decodeUser(snap)
	if err != nil {
		return nil, "", err
	}

	hash, _ := snap.DataAt("password_hash")
	hashStr, _ := hash.(string)
	return u, hashStr, nil
}

func (r *userRepository) Create(ctx context.Context, u *user.User, passwordHash string) (string, error) {
	doc := userToDoc(u)
	doc["password_hash"] = passwordHash
	ref, _, err := r.client.Collection(collUsers).Add(ctx, doc)
	if err != nil {
		return "", infra.WrapRepoErr("failed to create user", err)
	}
	return ref.ID, nil
}

// Update rewrites the profile fields but leaves password_hash and the
// wallet subtree alone; balances change only through the wallet
// repository's transactions.
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	doc := userToDoc(u)
	delete(doc, "Wallet_Balance")

	updates := make([]firestore.Update, 0, len(doc))
	for field, value := range doc {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	_, err := r.client.Collection(collUsers).Doc(u.ID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	return nil
}

func decodeUser(snap *firestore.DocumentSnapshot) (*user.User, error) {
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode user document", err, infra.KindBadDocument)
	}
	u, err := doc.toEntity(snap.Ref.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("user document failed validation", err, infra.KindBadDocument)
	}
	return u, nil
}
