package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/unikz/api/internal/public/application"
	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// UserRepository stores public profiles keyed by user id.
type UserRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewUserRepository(db *mongo.Database, collectionName string) *UserRepository {
	return &UserRepository{collection: db.Collection(collectionName), now: time.Now}
}

// SaveProfile merges the profile into the stored document. createdAt is only
// written on insert.
func (r *UserRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	if strings.TrimSpace(profile.UserID) == "" {
		return errors.New("user id is required")
	}
	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}
	set := bson.M{
		"email":     profile.Email,
		"updatedAt": r.now().UTC(),
	}
	if profile.DisplayName != "" {
		set["displayName"] = profile.DisplayName
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": createdAt},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": profile.UserID}, update, options.Update().SetUpsert(true))
	return err
}

// FindProfile returns the profile or application.ErrNotFound.
func (r *UserRepository) FindProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var doc UserDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &domain.UserProfile{
		UserID:      doc.UID,
		Email:       doc.Email,
		DisplayName: doc.DisplayName,
		CreatedAt:   doc.CreatedAt,
	}, nil
}
