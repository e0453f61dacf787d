package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shopmart/internal/auth"
	"shopmart/internal/errors"
	"shopmart/internal/model"
	"shopmart/internal/repository"
)

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	hasher     auth.PasswordHasher
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, hasher auth.PasswordHasher) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

// Signup creates a user with a zeroed 300-slot cart and issues a token.
// An already-registered email fails with ErrDuplicateEmail and creates
// nothing.
func (s *authService) Signup(ctx context.Context, username, email, password string) (string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", errors.ErrDuplicateEmail
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		CartData:     model.NewCartData(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Login checks the email and password and issues a token. The email and
// password failures stay distinct, matching the public API contract.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrInvalidEmail
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", errors.ErrWrongPassword
	}

	token, err := s.jwtService.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
