package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UniversityDocument is the stored shape of a catalog university.
type UniversityDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Slug            string             `bson:"slug"`
	Name            string             `bson:"name"`
	NameRu          string             `bson:"nameRu,omitempty"`
	Country         string             `bson:"country,omitempty"`
	CountryRu       string             `bson:"countryRu,omitempty"`
	City            string             `bson:"city"`
	CityRu          string             `bson:"cityRu,omitempty"`
	Description     string             `bson:"description,omitempty"`
	DescriptionRu   string             `bson:"descriptionRu,omitempty"`
	LogoURL         string             `bson:"logoUrl,omitempty"`
	CoverImageURL   string             `bson:"coverImageUrl,omitempty"`
	Ranking         *int               `bson:"ranking,omitempty"`
	FoundedYear     *int               `bson:"foundedYear,omitempty"`
	Website         string             `bson:"website,omitempty"`
	Email           string             `bson:"email,omitempty"`
	Phone           string             `bson:"phone,omitempty"`
	Address         string             `bson:"address,omitempty"`
	AddressRu       string             `bson:"addressRu,omitempty"`
	StudentsCount   *int               `bson:"studentsCount,omitempty"`
	HasHostel       bool               `bson:"hasHostel"`
	HasMilitaryDept bool               `bson:"hasMilitaryDept"`
	AcceptanceRate  *float64           `bson:"acceptanceRate,omitempty"`
	TuitionFee      *int               `bson:"tuitionFee,omitempty"`
	Accreditation   string             `bson:"accreditation,omitempty"`
	UniversityType  string             `bson:"universityType,omitempty"`
	CreatedAt       *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty"`
}

// MajorDocument is the stored shape of a catalog major.
type MajorDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Code               string             `bson:"code"`
	Name               string             `bson:"name"`
	NameRu             string             `bson:"nameRu,omitempty"`
	Description        string             `bson:"description,omitempty"`
	DescriptionRu      string             `bson:"descriptionRu,omitempty"`
	Category           string             `bson:"category"`
	RiasecTypes        []string           `bson:"riasecTypes,omitempty"`
	SubjectCombination []string           `bson:"subjectCombination,omitempty"`
}

// UserDocument is the public profile keyed by user id.
type UserDocument struct {
	UID         string    `bson:"_id"`
	Email       string    `bson:"email"`
	DisplayName string    `bson:"displayName,omitempty"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

// CredentialDocument holds the password hash of one account.
type CredentialDocument struct {
	UID          string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash []byte    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// QuizResultDocument is one finished quiz.
type QuizResultDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UID       string             `bson:"uid"`
	Scores    map[string]int     `bson:"scores"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// EntScoreDocument is one calculator run.
type EntScoreDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UID        string             `bson:"uid"`
	Scores     map[string]int     `bson:"scores"`
	TotalScore int                `bson:"totalScore"`
	Category   string             `bson:"category,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// ChatMessageDocument is one stored chat turn.
type ChatMessageDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UID       string             `bson:"uid"`
	Role      string             `bson:"role"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
}
