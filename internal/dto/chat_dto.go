// FILE: internal/dto/chat_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message     string    `json:"message" validate:"required"`
	SessionId   uuid.UUID `json:"sessionId,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
}

type ChatResponse struct {
	Message   string    `json:"message"`
	SessionId uuid.UUID `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsActive  bool      `json:"isActive"`
}

type MessageResponse struct {
	Id          uuid.UUID `json:"id"`
	SessionId   uuid.UUID `json:"sessionId"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Attachments []string  `json:"attachments,omitempty"`
}

type SearchResponse struct {
	Results []string `json:"results"`
}
