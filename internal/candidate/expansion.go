package candidate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ExpansionStore persist the expanded card index of a candidate list.
// A nil index means every card is collapsed.
type ExpansionStore interface {
	Get(ctx context.Context, key string) (*int, error)
	Set(ctx context.Context, key string, index *int) error
}

// Toggle compute next expanded index after clicking card i
func Toggle(current *int, i int) *int {
	if current != nil && *current == i {
		return nil
	}
	next := i
	return &next
}

func expansionKey(viewer, orderID string) string {
	return "expansion:" + viewer + ":" + orderID
}

// MemoryExpansionStore keep expansion state in process
type MemoryExpansionStore struct {
	mu    sync.RWMutex
	state map[string]int
}

// NewMemoryExpansionStore creates empty store
func NewMemoryExpansionStore() *MemoryExpansionStore {
	return &MemoryExpansionStore{state: map[string]int{}}
}

// Get implements ExpansionStore
func (m *MemoryExpansionStore) Get(_ context.Context, key string) (*int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.state[key]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

// Set implements ExpansionStore
func (m *MemoryExpansionStore) Set(_ context.Context, key string, index *int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index == nil {
		delete(m.state, key)
		return nil
	}
	m.state[key] = *index
	return nil
}

// RedisExpansionStore keep expansion state in redis so it survive restarts and is shared by replicas
type RedisExpansionStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisExpansionStore creates store expiring idle state after ttl
func NewRedisExpansionStore(client redis.UniversalClient, ttl time.Duration) *RedisExpansionStore {
	return &RedisExpansionStore{client: client, ttl: ttl}
}

// Get implements ExpansionStore
func (r *RedisExpansionStore) Get(ctx context.Context, key string) (*int, error) {
	raw, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get expansion %s: %w", key, err)
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return nil, nil
	}
	return &i, nil
}

// Set implements ExpansionStore
func (r *RedisExpansionStore) Set(ctx context.Context, key string, index *int) error {
	if index == nil {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("clear expansion %s: %w", key, err)
		}
		return nil
	}
	if err := r.client.Set(ctx, key, strconv.Itoa(*index), r.ttl).Err(); err != nil {
		return fmt.Errorf("set expansion %s: %w", key, err)
	}
	return nil
}
