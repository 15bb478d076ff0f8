package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Role        string         `gorm:"type:varchar(50);not null"`
	Content     string         `gorm:"type:text;not null"`
	Timestamp   time.Time      `gorm:"index"`
	Attachments datatypes.JSON `gorm:"type:jsonb"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
