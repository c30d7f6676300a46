// internal/repository/user_repository.go
package repository

import (
	"context"
	"errors"

	"snaplens-backend/internal/models"
	apperrors "snaplens-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) UserRepository {
	return &userRepository{
		collection: collection,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewUserAlreadyExistsError()
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) IncrementCredits(ctx context.Context, email string, delta int) (*models.User, error) {
	filter := bson.M{"email": email}
	// credits cannot carry a $setOnInsert default here since $inc already
	// touches the path; an auto-provisioned account starts at delta.
	update := bson.M{
		"$inc":         bson.M{"credits": delta},
		"$setOnInsert": bson.M{"wishlist": bson.A{}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EnsureAccount(ctx context.Context, email string) error {
	filter := bson.M{"email": email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"credits":  models.DefaultCredits,
			"wishlist": bson.A{},
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *userRepository) PushWishlistItem(ctx context.Context, email string, item *models.WishlistItem) error {
	// The wishlist.id guard makes re-adding an existing id a no-op.
	filter := bson.M{
		"email":       email,
		"wishlist.id": bson.M{"$ne": item.ID},
	}
	update := bson.M{"$push": bson.M{"wishlist": item}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

func (r *userRepository) PullWishlistItem(ctx context.Context, email, id string) (*models.User, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$pull": bson.M{"wishlist": bson.M{"id": id}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, err
	}
	return &user, nil
}
