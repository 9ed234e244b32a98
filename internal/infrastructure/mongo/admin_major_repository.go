package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/unikz/api/internal/admin/application"
	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
)

// AdminMajorRepository is the Mongo implementation of the admin major
// aggregate.
type AdminMajorRepository struct {
	collection *mongo.Collection
}

func NewAdminMajorRepository(db *mongo.Database, collection string) *AdminMajorRepository {
	return &AdminMajorRepository{collection: db.Collection(collection)}
}

func (r *AdminMajorRepository) Find(ctx context.Context, filter application.MajorFilter, paging application.Paging) ([]admindomain.Major, error) {
	mongoFilter := bson.M{}
	if category := strings.ToUpper(strings.TrimSpace(filter.Category)); category != "" {
		mongoFilter["category"] = category
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		mongoFilter["$or"] = bson.A{
			bson.M{"code": regex},
			bson.M{"name": regex},
			bson.M{"nameRu": regex},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}}).SetLimit(int64(clampLimit(paging.Limit)))
	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	majors := make([]admindomain.Major, 0)
	for cursor.Next(ctx) {
		var doc MajorDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		major, err := admindomain.NewMajor(admindomain.MajorInput{
			Code:               doc.Code,
			Name:               doc.Name,
			NameRu:             doc.NameRu,
			Description:        doc.Description,
			DescriptionRu:      doc.DescriptionRu,
			Category:           doc.Category,
			RiasecTypes:        doc.RiasecTypes,
			SubjectCombination: doc.SubjectCombination,
		})
		if err != nil {
			return nil, fmt.Errorf("major %s: %w", doc.ID.Hex(), err)
		}
		major.ID = doc.ID.Hex()
		majors = append(majors, major)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return majors, nil
}

// Create inserts a major unless its code is already taken.
func (r *AdminMajorRepository) Create(ctx context.Context, major *admindomain.Major) error {
	if err := r.collection.FindOne(ctx, bson.M{"code": major.Code.String()}).Err(); err == nil {
		return application.ErrDuplicate
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	result, err := r.collection.InsertOne(ctx, MajorDocument{
		Code:               major.Code.String(),
		Name:               major.Name,
		NameRu:             major.NameRu,
		Description:        major.Description,
		DescriptionRu:      major.DescriptionRu,
		Category:           major.Category.String(),
		RiasecTypes:        major.RiasecTypes.Strings(),
		SubjectCombination: major.SubjectCombination,
	})
	if mongo.IsDuplicateKeyError(err) {
		return application.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		major.ID = oid.Hex()
	}
	return nil
}

// UpsertByCode writes major keyed by its classifier code and reports
// whether a new document was inserted.
func (r *AdminMajorRepository) UpsertByCode(ctx context.Context, major *admindomain.Major) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"code": major.Code.String()},
		bson.M{"$set": bson.M{
			"name":               major.Name,
			"nameRu":             major.NameRu,
			"description":        major.Description,
			"descriptionRu":      major.DescriptionRu,
			"category":           major.Category.String(),
			"riasecTypes":        major.RiasecTypes.Strings(),
			"subjectCombination": major.SubjectCombination,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return result.UpsertedCount > 0, nil
}
