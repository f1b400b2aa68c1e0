package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound is returned when a reset token is unknown, expired, or
// already consumed.
var ErrTokenNotFound = errors.New("reset token not found")

// ResetTokenStore binds the two steps of the password-reset flow together: the
// verify step issues a token, the reset step must consume it. Tokens are
// single-use and expire on their own.
type ResetTokenStore interface {
	Issue(ctx context.Context, email string) (string, error)
	// Consume returns the email the token was issued for and invalidates it.
	Consume(ctx context.Context, token string) (string, error)
}

const resetKeyPrefix = "reset-token:"

// RedisResetTokens keeps reset tokens in Redis with a TTL.
type RedisResetTokens struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisResetTokens(rdb redis.Cmdable, ttl time.Duration) *RedisResetTokens {
	return &RedisResetTokens{rdb: rdb, ttl: ttl}
}

func (s *RedisResetTokens) Issue(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, resetKeyPrefix+token, email, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Consume uses GETDEL so a token can never be redeemed twice, even by two
// concurrent reset requests.
func (s *RedisResetTokens) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.GetDel(ctx, resetKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
