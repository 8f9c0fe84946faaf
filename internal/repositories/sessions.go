package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
)

// SessionDenylistRepository remembers closed sessions by token ID until the token would expire anyway.
type SessionDenylistRepository struct {
	client *redis.Client
}

func NewSessionDenylistRepository(client *redis.Client) *SessionDenylistRepository {
	return &SessionDenylistRepository{client: client}
}

func sessionKey(tokenID string) string {
	return "revoked_session:" + tokenID
}

// Revoke marks the token ID as closed. A non-positive ttl is a no-op since the token is already expired.
func (r *SessionDenylistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := sessionKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"revoke session",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

func (r *SessionDenylistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := sessionKey(tokenID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow(
		"check session",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
