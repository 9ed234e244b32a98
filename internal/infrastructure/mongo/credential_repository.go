package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sngm3741/unikz/api/internal/public/application"
)

// CredentialRepository stores password hashes. The unique email index makes
// Create race-free.
type CredentialRepository struct {
	collection *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database, collectionName string) *CredentialRepository {
	return &CredentialRepository{collection: db.Collection(collectionName)}
}

func (r *CredentialRepository) Create(ctx context.Context, credential application.Credential) error {
	_, err := r.collection.InsertOne(ctx, CredentialDocument{
		UID:          credential.UserID,
		Email:        credential.Email,
		PasswordHash: credential.PasswordHash,
		CreatedAt:    credential.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return application.ErrAlreadyExists
	}
	return err
}

func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*application.Credential, error) {
	var doc CredentialDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application.Credential{
		UserID:       doc.UID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
