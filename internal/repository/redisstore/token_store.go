// Package redisstore keeps refresh-token state in Redis so that a restart
// never invalidates sessions and revocation takes effect across instances.
package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	refreshKeyPrefix = "refresh:"
	userSetPrefix    = "refresh:user:"
)

type tokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a refresh token store backed by Redis. Tokens are
// stored by hash only; the raw token never touches the server side.
func NewTokenStore(client *redis.Client) domain.TokenRepository {
	return &tokenStore{client: client}
}

func refreshKey(tokenHash string) string {
	return refreshKeyPrefix + tokenHash
}

func userSetKey(userID int64) string {
	return userSetPrefix + strconv.FormatInt(userID, 10)
}

func (s *tokenStore) StoreRefresh(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return fmt.Errorf("token store: expiry is in the past")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, refreshKey(tokenHash), strconv.FormatInt(userID, 10), ttl)
	pipe.SAdd(ctx, userSetKey(userID), tokenHash)
	// The set outlives individual tokens by a little so stale members are
	// cleaned up lazily on revoke-all rather than leaking forever.
	pipe.ExpireGT(ctx, userSetKey(userID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("token store: store refresh: %w", err)
	}
	return nil
}

func (s *tokenStore) UserIDForRefresh(ctx context.Context, tokenHash string) (int64, error) {
	val, err := s.client.Get(ctx, refreshKey(tokenHash)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("token store: lookup refresh: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token store: corrupt value for token: %w", err)
	}
	return userID, nil
}

func (s *tokenStore) RevokeRefresh(ctx context.Context, tokenHash string) error {
	// Resolve the owner first so the membership set stays accurate.
	val, err := s.client.Get(ctx, refreshKey(tokenHash)).Result()
	if err != nil {
		if err == redis.Nil {
			return domain.ErrNotFound
		}
		return fmt.Errorf("token store: revoke refresh: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, refreshKey(tokenHash))
	if userID, perr := strconv.ParseInt(val, 10, 64); perr == nil {
		pipe.SRem(ctx, userSetKey(userID), tokenHash)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("token store: revoke refresh: %w", err)
	}
	return nil
}

func (s *tokenStore) RevokeAllForUser(ctx context.Context, userID int64) error {
	hashes, err := s.client.SMembers(ctx, userSetKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("token store: revoke all: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, h := range hashes {
		pipe.Del(ctx, refreshKey(h))
	}
	pipe.Del(ctx, userSetKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("token store: revoke all: %w", err)
	}
	return nil
}
