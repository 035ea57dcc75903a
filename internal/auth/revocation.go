package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenSetPrefix = "account_tokens:"

// redisRevocationStore keeps the live token ids for each account in a
// Redis set. The set expires alongside the longest-lived token, so
// entries for idle accounts clean themselves up.
type redisRevocationStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisRevocationStore creates a Redis-backed revocation store
func NewRedisRevocationStore(rdb *redis.Client, ttl time.Duration) RevocationStore {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &redisRevocationStore{rdb: rdb, ttl: ttl}
}

func (s *redisRevocationStore) Add(ctx context.Context, accountID, tokenID string) error {
	key := tokenSetPrefix + accountID
	if err := s.rdb.SAdd(ctx, key, tokenID).Err(); err != nil {
		return err
	}
	// Refresh expiry on every issue so the set outlives the newest token
	return s.rdb.Expire(ctx, key, s.ttl).Err()
}

func (s *redisRevocationStore) Contains(ctx context.Context, accountID, tokenID string) (bool, error) {
	return s.rdb.SIsMember(ctx, tokenSetPrefix+accountID, tokenID).Result()
}

func (s *redisRevocationStore) RemoveAll(ctx context.Context, accountID string) error {
	return s.rdb.Del(ctx, tokenSetPrefix+accountID).Err()
}
