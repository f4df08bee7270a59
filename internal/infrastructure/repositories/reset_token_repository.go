package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// ResetTokenRepositoryImpl implements domain.ResetTokenRepository using
// Redis. Expiry is the key TTL, so an expired token is indistinguishable
// from an unknown one, and GETDEL makes consumption single-use.
type ResetTokenRepositoryImpl struct {
	client *redis.Client
	ttl    time.Duration
}

const (
	resetTokenPrefix = "pwdreset:token:"
	resetUserPrefix  = "pwdreset:user:"
)

// NewResetTokenRepository creates a new reset token repository
func NewResetTokenRepository(client *redis.Client, ttl time.Duration) domain.ResetTokenRepository {
	return &ResetTokenRepositoryImpl{client: client, ttl: ttl}
}

// Store implements domain.ResetTokenRepository. Issuing a new token
// invalidates any previous one for the same user.
func (r *ResetTokenRepositoryImpl) Store(ctx context.Context, userID uint, tokenHash string) error {
	userKey := resetUserPrefix + strconv.FormatUint(uint64(userID), 10)

	prev, err := r.client.Get(ctx, userKey).Result()
	if err == nil && prev != "" {
		if err := r.client.Del(ctx, resetTokenPrefix+prev).Err(); err != nil {
			return fmt.Errorf("failed to invalidate previous reset token: %w", err)
		}
	} else if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to check previous reset token: %w", err)
	}

	if err := r.client.Set(ctx, resetTokenPrefix+tokenHash, userID, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	if err := r.client.Set(ctx, userKey, tokenHash, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to index reset token: %w", err)
	}
	return nil
}

// Consume implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) Consume(ctx context.Context, tokenHash string) (uint, error) {
	val, err := r.client.GetDel(ctx, resetTokenPrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrResetTokenInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("failed to consume reset token: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("corrupt reset token record: %w", err)
	}

	r.client.Del(ctx, resetUserPrefix+val)

	return uint(userID), nil
}
