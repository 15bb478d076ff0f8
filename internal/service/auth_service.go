// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"time"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/repository/contract"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	store    contract.Store
	tokenCfg serverutils.TokenConfig
	logger   logger.ILogger
}

func NewAuthService(store contract.Store, tokenCfg serverutils.TokenConfig, log logger.ILogger) IAuthService {
	return &authService{
		store:    store,
		tokenCfg: tokenCfg,
		logger:   log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	// 1. Check for existing user
	existing, _ := s.store.Users().FindByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create User Entity
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{
		"user_id": user.Id.String(),
	})

	// 4. Generate JWT
	token, err := serverutils.GenerateToken(s.tokenCfg, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:  token,
		UserId: user.Id,
		Name:   user.Name,
		Email:  user.Email,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, _ := s.store.Users().FindByEmail(ctx, req.Email)
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := serverutils.GenerateToken(s.tokenCfg, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:  token,
		UserId: user.Id,
		Name:   user.Name,
		Email:  user.Email,
	}, nil
}
