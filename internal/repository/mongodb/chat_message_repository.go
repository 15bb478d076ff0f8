package mongodb

import (
	"context"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/contract"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ChatMessageRepository struct {
	collection *mongo.Collection
}

func NewChatMessageRepository(db *mongo.Database) contract.ChatMessageRepository {
	return &ChatMessageRepository{collection: db.Collection(messagesCollection)}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	_, err := r.collection.InsertOne(ctx, messageToDocument(message))
	return err
}

func (r *ChatMessageRepository) FindAllBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	// Bson datetimes truncate to milliseconds, so same-millisecond turns
	// need the id tiebreak to keep a stable order.
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionId.String()}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := make([]*entity.ChatMessage, 0)
	for cursor.Next(ctx) {
		var doc messageDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		messages = append(messages, messageToEntity(&doc))
	}
	return messages, cursor.Err()
}
