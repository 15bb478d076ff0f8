package mapper

import (
	"encoding/json"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) UserToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var profile *entity.UserProfile
	if len(u.Profile) > 0 {
		var p entity.UserProfile
		if err := json.Unmarshal(u.Profile, &p); err == nil {
			profile = &p
		}
	}

	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Profile:      profile,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) UserToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var profile datatypes.JSON
	if u.Profile != nil {
		if raw, err := json.Marshal(u.Profile); err == nil {
			profile = raw
		}
	}

	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Profile:      profile,
		CreatedAt:    u.CreatedAt,
	}
}
