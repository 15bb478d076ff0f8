package contract

import (
	"context"

	"ai-chat-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindAllBySessionId returns the session's messages sorted by Timestamp ascending.
	FindAllBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error)
}
