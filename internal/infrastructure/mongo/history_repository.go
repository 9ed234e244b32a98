package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/unikz/api/internal/public/domain"
)

// QuizResultRepository appends quiz results.
type QuizResultRepository struct {
	collection *mongo.Collection
}

func NewQuizResultRepository(db *mongo.Database, collectionName string) *QuizResultRepository {
	return &QuizResultRepository{collection: db.Collection(collectionName)}
}

func (r *QuizResultRepository) Append(ctx context.Context, result domain.QuizResult) error {
	_, err := r.collection.InsertOne(ctx, QuizResultDocument{
		UID:       result.UserID,
		Scores:    result.Scores.Map(),
		CreatedAt: result.CreatedAt,
	})
	return err
}

// EntScoreRepository appends calculator runs.
type EntScoreRepository struct {
	collection *mongo.Collection
}

func NewEntScoreRepository(db *mongo.Database, collectionName string) *EntScoreRepository {
	return &EntScoreRepository{collection: db.Collection(collectionName)}
}

func (r *EntScoreRepository) Append(ctx context.Context, record domain.EntScoreRecord) error {
	scores := make(map[string]int, len(record.Scores))
	for k, v := range record.Scores {
		scores[k] = v
	}
	_, err := r.collection.InsertOne(ctx, EntScoreDocument{
		UID:        record.UserID,
		Scores:     scores,
		TotalScore: record.TotalScore,
		Category:   string(record.Category),
		CreatedAt:  record.CreatedAt,
	})
	return err
}

// ChatRepository stores assistant conversations.
type ChatRepository struct {
	collection *mongo.Collection
}

func NewChatRepository(db *mongo.Database, collectionName string) *ChatRepository {
	return &ChatRepository{collection: db.Collection(collectionName)}
}

func (r *ChatRepository) Append(ctx context.Context, message domain.ChatMessage) error {
	_, err := r.collection.InsertOne(ctx, ChatMessageDocument{
		UID:       message.UserID,
		Role:      string(message.Role),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	})
	return err
}

// History returns the newest limit messages of userID, oldest first.
func (r *ChatRepository) History(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.M{"uid": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := make([]domain.ChatMessage, 0)
	for cursor.Next(ctx) {
		var doc ChatMessageDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		messages = append(messages, domain.ChatMessage{
			ID:        doc.ID.Hex(),
			UserID:    doc.UID,
			Role:      domain.ChatRole(doc.Role),
			Content:   doc.Content,
			CreatedAt: doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
