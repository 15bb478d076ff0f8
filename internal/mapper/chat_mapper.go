package mapper

import (
	"encoding/json"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		IsActive:  s.IsActive,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		IsActive:  s.IsActive,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var attachments []string
	if len(msg.Attachments) > 0 {
		_ = json.Unmarshal(msg.Attachments, &attachments)
	}

	return &entity.ChatMessage{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		UserId:      msg.UserId,
		Role:        msg.Role,
		Content:     msg.Content,
		Timestamp:   msg.Timestamp,
		Attachments: attachments,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	var attachments datatypes.JSON
	if len(msg.Attachments) > 0 {
		if raw, err := json.Marshal(msg.Attachments); err == nil {
			attachments = raw
		}
	}

	return &model.ChatMessage{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		UserId:      msg.UserId,
		Role:        msg.Role,
		Content:     msg.Content,
		Timestamp:   msg.Timestamp,
		Attachments: attachments,
	}
}
