package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/unikz/api/internal/public/application"
	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// MajorRepository implements application.MajorRepository using MongoDB.
type MajorRepository struct {
	collection *mongo.Collection
}

// NewMajorRepository creates a new Mongo-backed major repository.
func NewMajorRepository(db *mongo.Database, collectionName string) *MajorRepository {
	return &MajorRepository{collection: db.Collection(collectionName)}
}

// List returns every major ordered by classifier code.
func (r *MajorRepository) List(ctx context.Context) ([]domain.Major, error) {
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	majors := make([]domain.Major, 0)
	for cursor.Next(ctx) {
		var doc MajorDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		majors = append(majors, mapMajorDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return majors, nil
}

// FindByID returns one major by hex id. Malformed ids are reported as
// application.ErrNotFound.
func (r *MajorRepository) FindByID(ctx context.Context, id string) (*domain.Major, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, application.ErrNotFound
	}
	var doc MajorDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	major := mapMajorDocument(doc)
	return &major, nil
}

func mapMajorDocument(doc MajorDocument) domain.Major {
	types := make([]domain.RiasecType, 0, len(doc.RiasecTypes))
	for _, raw := range doc.RiasecTypes {
		if t, err := domain.ParseRiasecType(raw); err == nil {
			types = append(types, t)
		}
	}
	return domain.Major{
		ID:                 doc.ID.Hex(),
		Code:               doc.Code,
		Name:               doc.Name,
		NameRu:             doc.NameRu,
		Description:        doc.Description,
		DescriptionRu:      doc.DescriptionRu,
		Category:           domain.MajorCategory(strings.ToUpper(doc.Category)),
		RiasecTypes:        types,
		SubjectCombination: append([]string{}, doc.SubjectCombination...),
	}
}
