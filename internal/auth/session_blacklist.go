package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// JwtBlacklistStore remember revoked tokens until they expire
type JwtBlacklistStore interface {
	// IsBlacklisted checks if the given token is revoked.
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	// AddToBlacklist revoke the given token until exp.
	AddToBlacklist(ctx context.Context, token string, exp time.Time) error
}

// InMemoryBlacklistStore keep revoked tokens in process
type InMemoryBlacklistStore struct {
	blacklist map[string]time.Time
	mu        sync.RWMutex
}

// NewInMemoryBlacklistStore creates store and start cleaning expired tokens every 5 minutes until ctx is done
func NewInMemoryBlacklistStore(ctx context.Context) *InMemoryBlacklistStore {
	store := &InMemoryBlacklistStore{
		blacklist: make(map[string]time.Time),
	}
	go periodicCleanUp(ctx, store, 5*time.Minute)
	return store
}

func periodicCleanUp(ctx context.Context, store *InMemoryBlacklistStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.CleanUpExpired()
		}
	}
}

// CleanUpExpired drop tokens whose expiry passed
func (s *InMemoryBlacklistStore) CleanUpExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, exp := range s.blacklist {
		if exp.Before(now) {
			delete(s.blacklist, token)
		}
	}
}

// IsBlacklisted implements JwtBlacklistStore
func (s *InMemoryBlacklistStore) IsBlacklisted(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.blacklist[token]
	return exists, nil
}

// AddToBlacklist implements JwtBlacklistStore
func (s *InMemoryBlacklistStore) AddToBlacklist(_ context.Context, token string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist[token] = exp
	return nil
}

// RedisBlacklistStore share revoked tokens between replicas, each entry expire with its token
type RedisBlacklistStore struct {
	client redis.UniversalClient
}

// NewRedisBlacklistStore creates redis backed blacklist
func NewRedisBlacklistStore(client redis.UniversalClient) *RedisBlacklistStore {
	return &RedisBlacklistStore{client: client}
}

func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "jwt:revoked:" + hex.EncodeToString(sum[:])
}

// IsBlacklisted implements JwtBlacklistStore
func (s *RedisBlacklistStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

// AddToBlacklist implements JwtBlacklistStore. Already expired tokens are not stored.
func (s *RedisBlacklistStore) AddToBlacklist(ctx context.Context, token string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, blacklistKey(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
