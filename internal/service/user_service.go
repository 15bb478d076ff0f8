// FILE: internal/service/user_service.go
package service

import (
	"context"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	store contract.Store
}

func NewUserService(store contract.Store) IUserService {
	return &userService{store: store}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	user, _ := s.store.Users().FindById(ctx, userId)
	if user == nil {
		return nil, ErrNotFound
	}

	return &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		Profile:   user.Profile,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, _ := s.store.Users().FindById(ctx, userId)
	if user == nil {
		return nil, ErrNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Profile != nil {
		user.Profile = req.Profile
	}

	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		Profile:   user.Profile,
		CreatedAt: user.CreatedAt,
	}, nil
}
