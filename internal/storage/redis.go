package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps issued bearer tokens in Redis so expiry is handled by the
// store's own TTL machinery.
type TokenStore struct {
	Client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{Client: client}
}

func tokenKey(token string) string {
	return "auth:token:" + token
}

func (s *TokenStore) Save(ctx context.Context, token string, userID int, ttl time.Duration) error {
	return s.Client.Set(ctx, tokenKey(token), strconv.Itoa(userID), ttl).Err()
}

func (s *TokenStore) Lookup(ctx context.Context, token string) (int, bool, error) {
	raw, err := s.Client.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return userID, true, nil
}
