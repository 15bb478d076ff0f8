// Package memory backs the repository contracts with plain maps. It exists
// for unit tests and local development without a database; behavior matches
// the Postgres and Mongo backends, including sort orders and fault-free
// lookup misses.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/repository/contract"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]*entity.User
	sessions map[uuid.UUID]*entity.ChatSession
	messages map[uuid.UUID][]*entity.ChatMessage // keyed by session id
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*entity.User),
		sessions: make(map[uuid.UUID]*entity.ChatSession),
		messages: make(map[uuid.UUID][]*entity.ChatMessage),
	}
}

func (s *Store) Users() contract.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) ChatSessions() contract.ChatSessionRepository {
	return &sessionRepository{store: s}
}

func (s *Store) ChatMessages() contract.ChatMessageRepository {
	return &messageRepository{store: s}
}

var _ contract.Store = (*Store)(nil)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users[user.Id] = &copied
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users[user.Id] = &copied
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if u, ok := r.store.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

type sessionRepository struct {
	store *Store
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *session
	r.store.sessions[session.Id] = &copied
	return nil
}

func (r *sessionRepository) Update(ctx context.Context, session *entity.ChatSession) error {
	session.UpdatedAt = time.Now().UTC()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *session
	r.store.sessions[session.Id] = &copied
	return nil
}

func (r *sessionRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if s, ok := r.store.sessions[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (r *sessionRepository) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	sessions := make([]*entity.ChatSession, 0)
	for _, s := range r.store.sessions {
		if s.UserId == userId {
			copied := *s
			sessions = append(sessions, &copied)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})
	return sessions, nil
}

type messageRepository struct {
	store *Store
}

func (r *messageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *message
	r.store.messages[message.SessionId] = append(r.store.messages[message.SessionId], &copied)
	return nil
}

func (r *messageRepository) FindAllBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	messages := make([]*entity.ChatMessage, 0, len(r.store.messages[sessionId]))
	for _, m := range r.store.messages[sessionId] {
		copied := *m
		messages = append(messages, &copied)
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].Id.String() < messages[j].Id.String()
		}
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}
