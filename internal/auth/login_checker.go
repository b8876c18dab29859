package auth

import (
	"context"

	"github.com/go-redis/redis/v8"
)

var _ Checker = (*LoginChecker)(nil)

// LoginChecker answers whether a token has a live session. Sessions are
// redis keys with a TTL, so a token is logged in iff its key still exists.
type LoginChecker struct {
	redisClient *redis.Client
}

func NewLoginChecker(redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	alive, err := lc.redisClient.Exists(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return alive > 0, nil
}
