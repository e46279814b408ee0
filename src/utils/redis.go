package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	DB "Backend-FormCraft/src/database"
)

// BlacklistToken revokes an access token until it would have expired.
// Without Redis logout is a no-op.
func BlacklistToken(ctx context.Context, token string, expiresIn time.Duration) error {
	client := DB.RedisClient
	if client == nil || expiresIn <= 0 {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted is always false without Redis.
func IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	client := DB.RedisClient
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Get(ctx, key).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
