package mongodb

import (
	"ai-chat-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Store struct {
	users    contract.UserRepository
	sessions contract.ChatSessionRepository
	messages contract.ChatMessageRepository
}

func NewStore(db *mongo.Database) contract.Store {
	return &Store{
		users:    NewUserRepository(db),
		sessions: NewChatSessionRepository(db),
		messages: NewChatMessageRepository(db),
	}
}

func (s *Store) Users() contract.UserRepository {
	return s.users
}

func (s *Store) ChatSessions() contract.ChatSessionRepository {
	return s.sessions
}

func (s *Store) ChatMessages() contract.ChatMessageRepository {
	return s.messages
}
