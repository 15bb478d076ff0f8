// Mongo documents mirror the entity shapes but key on plain string ids,
// since the Mongo backend matches on id fields rather than partition keys.
package mongodb

import (
	"time"

	"ai-chat-be/internal/entity"

	"github.com/google/uuid"
)

const (
	usersCollection    = "users"
	sessionsCollection = "sessions"
	messagesCollection = "chatHistory"
)

type userDocument struct {
	Id           string               `bson:"id"`
	Email        string               `bson:"email"`
	Name         string               `bson:"name"`
	PasswordHash string               `bson:"passwordHash"`
	Profile      *userProfileDocument `bson:"profile,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt"`
}

type userProfileDocument struct {
	Preferences map[string]string `bson:"preferences"`
	Interests   []string          `bson:"interests"`
	Context     string            `bson:"context"`
}

type sessionDocument struct {
	Id        string    `bson:"id"`
	UserId    string    `bson:"userId"`
	Title     string    `bson:"title"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
	IsActive  bool      `bson:"isActive"`
}

type messageDocument struct {
	Id          string    `bson:"id"`
	SessionId   string    `bson:"sessionId"`
	UserId      string    `bson:"userId"`
	Role        string    `bson:"role"`
	Content     string    `bson:"content"`
	Timestamp   time.Time `bson:"timestamp"`
	Attachments []string  `bson:"attachments,omitempty"`
}

func userToDocument(u *entity.User) *userDocument {
	doc := &userDocument{
		Id:           u.Id.String(),
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
	if u.Profile != nil {
		doc.Profile = &userProfileDocument{
			Preferences: u.Profile.Preferences,
			Interests:   u.Profile.Interests,
			Context:     u.Profile.Context,
		}
	}
	return doc
}

func userToEntity(doc *userDocument) *entity.User {
	id, _ := uuid.Parse(doc.Id)
	u := &entity.User{
		Id:           id,
		Email:        doc.Email,
		Name:         doc.Name,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}
	if doc.Profile != nil {
		u.Profile = &entity.UserProfile{
			Preferences: doc.Profile.Preferences,
			Interests:   doc.Profile.Interests,
			Context:     doc.Profile.Context,
		}
	}
	return u
}

func sessionToDocument(s *entity.ChatSession) *sessionDocument {
	return &sessionDocument{
		Id:        s.Id.String(),
		UserId:    s.UserId.String(),
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		IsActive:  s.IsActive,
	}
}

func sessionToEntity(doc *sessionDocument) *entity.ChatSession {
	id, _ := uuid.Parse(doc.Id)
	userId, _ := uuid.Parse(doc.UserId)
	return &entity.ChatSession{
		Id:        id,
		UserId:    userId,
		Title:     doc.Title,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		IsActive:  doc.IsActive,
	}
}

func messageToDocument(m *entity.ChatMessage) *messageDocument {
	return &messageDocument{
		Id:          m.Id.String(),
		SessionId:   m.SessionId.String(),
		UserId:      m.UserId.String(),
		Role:        m.Role,
		Content:     m.Content,
		Timestamp:   m.Timestamp,
		Attachments: m.Attachments,
	}
}

func messageToEntity(doc *messageDocument) *entity.ChatMessage {
	id, _ := uuid.Parse(doc.Id)
	sessionId, _ := uuid.Parse(doc.SessionId)
	userId, _ := uuid.Parse(doc.UserId)
	return &entity.ChatMessage{
		Id:          id,
		SessionId:   sessionId,
		UserId:      userId,
		Role:        doc.Role,
		Content:     doc.Content,
		Timestamp:   doc.Timestamp,
		Attachments: doc.Attachments,
	}
}
