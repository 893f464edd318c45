package service

import (
	"context"
	"fmt"

	"github.com/billow-app/billow/internal/apperr"
	"github.com/billow-app/billow/internal/auth"
	usermodel "github.com/billow-app/billow/internal/models/user"
	"github.com/billow-app/billow/internal/storage"
)

type AuthService struct {
	users storage.UserStorage
	jwt   *auth.JWTManager
}

func NewAuthService(users storage.UserStorage, jwt *auth.JWTManager) *AuthService {
	return &AuthService{
		users: users,
		jwt:   jwt,
	}
}

// AuthResult is the login/register response: a bearer token plus the
// redacted user projection.
type AuthResult struct {
	AccessToken string            `json:"access_token"`
	User        usermodel.Profile `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, _, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{
		AccessToken: token,
		User:        user.Profile(),
	}, nil
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if len(password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, &usermodel.CreateUserRequest{
		Email:    email,
		Name:     name,
		Password: password,
	}, passwordHash)
	if err != nil {
		return nil, err
	}

	token, _, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{
		AccessToken: token,
		User:        user.Profile(),
	}, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*usermodel.Profile, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	profile := user.Profile()
	return &profile, nil
}
