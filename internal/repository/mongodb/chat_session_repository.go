package mongodb

import (
	"context"
	"time"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/contract"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ChatSessionRepository struct {
	collection *mongo.Collection
}

func NewChatSessionRepository(db *mongo.Database) contract.ChatSessionRepository {
	return &ChatSessionRepository{collection: db.Collection(sessionsCollection)}
}

func (r *ChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	_, err := r.collection.InsertOne(ctx, sessionToDocument(session))
	return err
}

func (r *ChatSessionRepository) Update(ctx context.Context, session *entity.ChatSession) error {
	session.UpdatedAt = time.Now().UTC()
	filter := bson.M{"id": session.Id.String()}
	_, err := r.collection.ReplaceOne(ctx, filter, sessionToDocument(session))
	return err
}

func (r *ChatSessionRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	var doc sessionDocument
	if err := r.collection.FindOne(ctx, bson.M{"id": id.String()}).Decode(&doc); err != nil {
		return nil, nil
	}
	return sessionToEntity(&doc), nil
}

func (r *ChatSessionRepository) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userId.String()}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := make([]*entity.ChatSession, 0)
	for cursor.Next(ctx) {
		var doc sessionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		sessions = append(sessions, sessionToEntity(&doc))
	}
	return sessions, cursor.Err()
}
