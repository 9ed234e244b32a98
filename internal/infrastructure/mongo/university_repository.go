package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/unikz/api/internal/public/application"
	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// UniversityRepository implements application.UniversityRepository using MongoDB.
type UniversityRepository struct {
	collection *mongo.Collection
}

// NewUniversityRepository creates a new Mongo-backed university repository.
func NewUniversityRepository(db *mongo.Database, collectionName string) *UniversityRepository {
	return &UniversityRepository{collection: db.Collection(collectionName)}
}

// List returns the whole catalog ordered by ranking. Insertion order breaks
// ties so unranked entries keep a stable order.
func (r *UniversityRepository) List(ctx context.Context) ([]domain.University, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	universities := make([]domain.University, 0)
	for cursor.Next(ctx) {
		var doc UniversityDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		universities = append(universities, mapUniversityDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	domain.SortByRanking(universities)
	return universities, nil
}

// FindBySlug returns one university or application.ErrNotFound.
func (r *UniversityRepository) FindBySlug(ctx context.Context, slug string) (*domain.University, error) {
	var doc UniversityDocument
	err := r.collection.FindOne(ctx, bson.M{"slug": strings.ToLower(strings.TrimSpace(slug))}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	university := mapUniversityDocument(doc)
	return &university, nil
}

func mapUniversityDocument(doc UniversityDocument) domain.University {
	u := domain.University{
		ID:              doc.ID.Hex(),
		Slug:            doc.Slug,
		Name:            doc.Name,
		NameRu:          doc.NameRu,
		Country:         doc.Country,
		CountryRu:       doc.CountryRu,
		City:            doc.City,
		CityRu:          doc.CityRu,
		Description:     doc.Description,
		DescriptionRu:   doc.DescriptionRu,
		LogoURL:         doc.LogoURL,
		CoverImageURL:   doc.CoverImageURL,
		Ranking:         doc.Ranking,
		FoundedYear:     doc.FoundedYear,
		Website:         doc.Website,
		Email:           doc.Email,
		Phone:           doc.Phone,
		Address:         doc.Address,
		AddressRu:       doc.AddressRu,
		StudentsCount:   doc.StudentsCount,
		HasHostel:       doc.HasHostel,
		HasMilitaryDept: doc.HasMilitaryDept,
		AcceptanceRate:  doc.AcceptanceRate,
		TuitionFee:      doc.TuitionFee,
		Accreditation:   doc.Accreditation,
		UniversityType:  domain.UniversityType(strings.ToUpper(doc.UniversityType)),
	}
	if doc.CreatedAt != nil {
		u.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		u.UpdatedAt = *doc.UpdatedAt
	}
	return u
}
