package contract

import (
	"context"

	"ai-chat-be/internal/entity"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	// Update stamps UpdatedAt with the current time before writing.
	Update(ctx context.Context, session *entity.ChatSession) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)
	// FindAllByUserId returns the user's sessions sorted by UpdatedAt descending.
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error)
}
