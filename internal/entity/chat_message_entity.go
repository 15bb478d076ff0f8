package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one conversation turn. Append-only: never updated or
// deleted once written.
type ChatMessage struct {
	Id          uuid.UUID
	SessionId   uuid.UUID
	UserId      uuid.UUID
	Role        string
	Content     string
	Timestamp   time.Time
	Attachments []string
}
