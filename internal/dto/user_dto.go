// FILE: internal/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-chat-be/internal/entity"
)

type UserResponse struct {
	Id        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Profile   *entity.UserProfile `json:"profile,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

type UpdateProfileRequest struct {
	Name    string              `json:"name,omitempty"`
	Profile *entity.UserProfile `json:"profile,omitempty"`
}
