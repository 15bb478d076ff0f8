package implementation

import (
	"ai-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type StoreImpl struct {
	users    contract.UserRepository
	sessions contract.ChatSessionRepository
	messages contract.ChatMessageRepository
}

func NewStore(db *gorm.DB) contract.Store {
	return &StoreImpl{
		users:    NewUserRepository(db),
		sessions: NewChatSessionRepository(db),
		messages: NewChatMessageRepository(db),
	}
}

func (s *StoreImpl) Users() contract.UserRepository {
	return s.users
}

func (s *StoreImpl) ChatSessions() contract.ChatSessionRepository {
	return s.sessions
}

func (s *StoreImpl) ChatMessages() contract.ChatMessageRepository {
	return s.messages
}
