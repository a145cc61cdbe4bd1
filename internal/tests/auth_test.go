package tests

import (
	"context"
	"testing"
	"time"

	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/mocks"
	"restaurant-orders/internal/service"
	"restaurant-orders/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func setupTokenStore(t *testing.T) (*storage.TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewTokenStore(client), mr
}

func TestTokenStore_SaveAndLookup(t *testing.T) {
	store, _ := setupTokenStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "abc123", 7, time.Hour))

	userID, ok, err := store.Lookup(ctx, "abc123")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, userID)
}

func TestTokenStore_UnknownToken(t *testing.T) {
	store, _ := setupTokenStore(t)

	_, ok, err := store.Lookup(context.Background(), "never-issued")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenStore_Expiry(t *testing.T) {
	store, mr := setupTokenStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "abc123", 7, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Lookup(ctx, "abc123")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_IssueAndAuthenticate(t *testing.T) {
	store, _ := setupTokenStore(t)
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, store, time.Hour)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("test_pass"), bcrypt.MinCost)
	assert.NoError(t, err)

	users.On("GetUserByUsername", "test_user").
		Return(&domain.User{ID: 7, Username: "test_user", PasswordHash: string(hash)}, nil)

	token, err := svc.IssueToken(ctx, "test_user", "test_pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.Authenticate(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, 7, userID)

	_, err = svc.IssueToken(ctx, "test_user", "wrong_pass")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "forged-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_Register(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, nil, time.Hour)
	ctx := context.Background()

	users.On("CreateUser", mock.AnythingOfType("*domain.User")).Return(nil).Once()

	user, err := svc.Register(ctx, "new_user", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "new_user", user.Username)
	// the stored hash must verify against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))

	_, err = svc.Register(ctx, "", "secret")
	var invalid *domain.ValidationError
	assert.ErrorAs(t, err, &invalid)
}
