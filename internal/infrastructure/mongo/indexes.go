package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections names every collection the service touches.
type Collections struct {
	Universities string
	Majors       string
	Users        string
	Credentials  string
	QuizResults  string
	EntScores    string
	Chats        string
}

// DefaultCollections returns the production collection names.
func DefaultCollections() Collections {
	return Collections{
		Universities: "universities",
		Majors:       "majors",
		Users:        "users",
		Credentials:  "credentials",
		QuizResults:  "quizResults",
		EntScores:    "entScores",
		Chats:        "chatHistory",
	}
}

// EnsureIndexes creates the indexes the repositories rely on. It is safe to
// call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database, c Collections) error {
	plan := map[string][]mongo.IndexModel{
		c.Universities: {
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("uniq_university_slug").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "city", Value: 1}},
				Options: options.Index().SetName("idx_university_city"),
			},
		},
		c.Majors: {
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetName("uniq_major_code").SetUnique(true),
			},
		},
		c.Credentials: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("uniq_credential_email").SetUnique(true),
			},
		},
		c.QuizResults: {
			{
				Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_quiz_uid_createdAt"),
			},
		},
		c.EntScores: {
			{
				Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_ent_uid_createdAt"),
			},
		},
		c.Chats: {
			{
				Keys:    bson.D{{Key: "uid", Value: 1}, {Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("idx_chat_uid_createdAt"),
			},
		},
	}

	for _, name := range []string{c.Universities, c.Majors, c.Credentials, c.QuizResults, c.EntScores, c.Chats} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, plan[name]); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
