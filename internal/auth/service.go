package auth

import (
	"context"
	"time"

	"github.com/vmilosevic/liftinsights/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	// SessionTTL is how long an issued token stays valid. Redis owns the
	// expiry: session keys are written with this TTL and vanish on their own.
	SessionTTL = 14 * 24 * time.Hour

	tokenLength      = 40
	sessionKeyPrefix = "liftinsights-session||"
	issuedTokensKey  = "liftinsights-issued-tokens"
)

// Admin is the single account allowed to log in through the web surface.
// The mobile app authenticates with its own shared secret instead.
type Admin struct {
	Username     string
	PasswordHash string
}

// Service issues and revokes session tokens. A token is logged in exactly
// as long as its session key lives in redis; the issued-tokens set only
// exists so PurgeExpired can clear out leftovers after redis expires keys.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// swappable so tests get deterministic tokens
	TokenFunc func(n int) (string, error)
}

func NewAuthService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:         ttl,
		redisClient: redisClient,
		TokenFunc:   pkg.GenerateRandomString,
	}
}

// Login mints a fresh token and stores its session key with the service TTL.
func (as *Service) Login(ctx context.Context, createdAt time.Time) (string, error) {
	token, err := as.TokenFunc(tokenLength)
	if err != nil {
		return "", err
	}

	if err := as.redisClient.Set(ctx, sessionKeyPrefix+token, createdAt.Unix(), as.ttl).Err(); err != nil {
		return "", err
	}
	if err := as.redisClient.SAdd(ctx, issuedTokensKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout deletes the session key. Returns false when the token was unknown
// or its session had already expired.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}

	if err := as.redisClient.SRem(ctx, issuedTokensKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// PurgeExpired drops issued tokens whose session key redis has already
// expired, so the issued-tokens set does not grow forever.
// Returns the number of tokens purged.
func (as *Service) PurgeExpired(ctx context.Context) int {
	tokens, err := as.redisClient.SMembers(ctx, issuedTokensKey).Result()
	if err != nil {
		log.Errorf("auth purge, list issued tokens: %s", err)
		return 0
	}
	if len(tokens) == 0 {
		return 0
	}

	purged := 0
	for _, token := range tokens {
		alive, err := as.redisClient.Exists(ctx, sessionKeyPrefix+token).Result()
		if err != nil {
			log.Errorf("auth purge, check token %s: %s", token, err)
			continue
		}
		if alive > 0 {
			continue
		}

		if err := as.redisClient.SRem(ctx, issuedTokensKey, token).Err(); err != nil {
			log.Errorf("auth purge, remove token %s: %s", token, err)
			continue
		}
		purged++
	}

	if purged > 0 {
		log.Debugf("auth purge, removed %d expired tokens", purged)
	}
	return purged
}
