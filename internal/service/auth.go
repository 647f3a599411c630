package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trendyfy/storefront/internal/hash"
	"github.com/trendyfy/storefront/internal/logging"
	"github.com/trendyfy/storefront/internal/models"
	"github.com/trendyfy/storefront/internal/storage"
	"github.com/trendyfy/storefront/internal/tokens"
)

type AuthService struct {
	Users     storage.UserStore
	JWTSecret []byte
}

type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("email, password and name are required: %w", ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup_error", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: pwHash,
		Name:         name,
	}
	if err := s.Users.Create(ctx, &user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueToken(&user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error("login_error", "error", err)
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*AuthResult, error) {
	exp := time.Now().Add(tokens.TTL)
	token, err := tokens.Sign(user.ID, user.Email, user.Name, s.JWTSecret, exp)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: exp}, nil
}
