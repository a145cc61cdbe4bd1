package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"restaurant-orders/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type AuthService struct {
	users  UserRepository
	tokens TokenStore
	ttl    time.Duration
}

func NewAuthService(users UserRepository, tokens TokenStore, ttl time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, ttl: ttl}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, &domain.ValidationError{Message: "username and password are required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.CreateUser(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// IssueToken verifies the credentials and hands out an opaque bearer token
// that stays valid for the configured TTL.
func (s *AuthService) IssueToken(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.tokens.Save(ctx, token, user.ID, s.ttl); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	userID, ok, err := s.tokens.Lookup(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("lookup token: %w", err)
	}
	if !ok {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
