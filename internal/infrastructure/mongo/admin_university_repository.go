package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/unikz/api/internal/admin/application"
	admindomain "github.com/sngm3741/unikz/api/internal/admin/domain"
)

// AdminUniversityRepository is the Mongo implementation of the admin
// university aggregate.
type AdminUniversityRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewAdminUniversityRepository(db *mongo.Database, collection string) *AdminUniversityRepository {
	return &AdminUniversityRepository{collection: db.Collection(collection), now: time.Now}
}

// Find returns universities matching a case-insensitive keyword and city.
func (r *AdminUniversityRepository) Find(ctx context.Context, filter application.UniversityFilter, paging application.Paging) ([]admindomain.University, error) {
	mongoFilter := bson.M{}
	clauses := make([]bson.M, 0)
	if city := strings.ToLower(strings.TrimSpace(filter.City)); city != "" {
		clauses = append(clauses, bson.M{"city": city})
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"name": regex},
			bson.M{"nameRu": regex},
			bson.M{"slug": regex},
		}})
	}
	if len(clauses) == 1 {
		mongoFilter = clauses[0]
	} else if len(clauses) > 1 {
		mongoFilter["$and"] = clauses
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	opts.SetLimit(int64(clampLimit(paging.Limit)))

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	universities := make([]admindomain.University, 0)
	for cursor.Next(ctx) {
		var doc UniversityDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		university, err := mapAdminUniversity(doc)
		if err != nil {
			return nil, err
		}
		universities = append(universities, university)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return universities, nil
}

// FindByID loads one university by hex ObjectID.
func (r *AdminUniversityRepository) FindByID(ctx context.Context, id string) (*admindomain.University, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, application.ErrNotFound
	}
	var doc UniversityDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	university, err := mapAdminUniversity(doc)
	if err != nil {
		return nil, err
	}
	return &university, nil
}

// Create checks the slug for duplicates and inserts the university. The
// generated id is written back to university.
func (r *AdminUniversityRepository) Create(ctx context.Context, university *admindomain.University) error {
	if err := r.collection.FindOne(ctx, bson.M{"slug": university.Slug.String()}).Err(); err == nil {
		return application.ErrDuplicate
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	now := r.now().UTC()
	payload, err := buildUniversityDocument(university)
	if err != nil {
		return err
	}
	payload["createdAt"] = now
	payload["updatedAt"] = now

	result, err := r.collection.InsertOne(ctx, payload)
	if mongo.IsDuplicateKeyError(err) {
		return application.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		university.ID = oid.Hex()
	}
	university.CreatedAt = now
	university.UpdatedAt = now
	return nil
}

// Update replaces the editable fields of an existing university.
func (r *AdminUniversityRepository) Update(ctx context.Context, university *admindomain.University) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(university.ID))
	if err != nil {
		return application.ErrNotFound
	}
	update, err := buildUniversityDocument(university)
	if err != nil {
		return err
	}
	now := r.now().UTC()
	update["updatedAt"] = now

	result, err := r.collection.UpdateByID(ctx, objectID, bson.M{"$set": update})
	if mongo.IsDuplicateKeyError(err) {
		return application.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	university.UpdatedAt = now
	return nil
}

func mapAdminUniversity(doc UniversityDocument) (admindomain.University, error) {
	university, err := admindomain.NewUniversity(admindomain.UniversityInput{
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
		UniversityType:  doc.UniversityType,
	})
	if err != nil {
		return admindomain.University{}, fmt.Errorf("university %s: %w", doc.ID.Hex(), err)
	}
	university.ID = doc.ID.Hex()
	if doc.CreatedAt != nil {
		university.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		university.UpdatedAt = *doc.UpdatedAt
	}
	return university, nil
}

// buildUniversityDocument flattens the value objects into BSON.
func buildUniversityDocument(u *admindomain.University) (bson.M, error) {
	if u == nil {
		return nil, fmt.Errorf("university payload is nil")
	}
	return bson.M{
		"slug":            u.Slug.String(),
		"name":            u.Name,
		"nameRu":          u.NameRu,
		"country":         u.Country,
		"countryRu":       u.CountryRu,
		"city":            u.City.String(),
		"cityRu":          u.CityRu,
		"description":     u.Description,
		"descriptionRu":   u.DescriptionRu,
		"logoUrl":         u.LogoURL.String(),
		"coverImageUrl":   u.CoverImageURL.String(),
		"ranking":         u.Ranking.Ptr(),
		"foundedYear":     u.FoundedYear.Ptr(),
		"website":         u.Website.String(),
		"email":           u.Email.String(),
		"phone":           u.Phone,
		"address":         u.Address,
		"addressRu":       u.AddressRu,
		"studentsCount":   u.StudentsCount.Ptr(),
		"hasHostel":       u.HasHostel,
		"hasMilitaryDept": u.HasMilitaryDept,
		"acceptanceRate":  u.AcceptanceRate.Ptr(),
		"tuitionFee":      u.TuitionFee.Ptr(),
		"accreditation":   u.Accreditation,
		"universityType":  u.UniversityType.String(),
	}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// UpsertBySlug writes university keyed by slug and reports whether a new
// document was inserted. createdAt is only set on insert.
func (r *AdminUniversityRepository) UpsertBySlug(ctx context.Context, university *admindomain.University) (bool, error) {
	payload, err := buildUniversityDocument(university)
	if err != nil {
		return false, err
	}
	now := r.now().UTC()
	payload["updatedAt"] = now

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"slug": university.Slug.String()},
		bson.M{"$set": payload, "$setOnInsert": bson.M{"createdAt": now}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return result.UpsertedCount > 0, nil
}
