package jobpost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard-backend/internal/model"
)

// ErrDraftNotFound is returned for unknown, expired or foreign drafts
var ErrDraftNotFound = errors.New("job posting draft not found")

// Draft is a job posting wizard in progress
type Draft struct {
	ID        string            `json:"id"`
	Owner     string            `json:"owner"`
	Step      int               `json:"step"`
	StepName  string            `json:"step_name"`
	Form      model.JobPostForm `json:"form"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// DraftStore persist wizard drafts between requests
type DraftStore interface {
	Get(ctx context.Context, id string) (Draft, error)
	Save(ctx context.Context, d Draft) error
	Delete(ctx context.Context, id string) error
}

// MemoryDraftStore keep drafts in process
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

// NewMemoryDraftStore creates empty store
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: map[string]Draft{}}
}

func (m *MemoryDraftStore) Get(_ context.Context, id string) (Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (m *MemoryDraftStore) Save(_ context.Context, d Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[d.ID] = d
	return nil
}

func (m *MemoryDraftStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
	return nil
}

// RedisDraftStore keep drafts as JSON values expiring after ttl of inactivity
type RedisDraftStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisDraftStore creates redis backed draft store
func NewRedisDraftStore(client redis.UniversalClient, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func draftKey(id string) string { return "jobpost:draft:" + id }

func (r *RedisDraftStore) Get(ctx context.Context, id string) (Draft, error) {
	raw, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return Draft{}, fmt.Errorf("get draft %s: %w", id, err)
	}
	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return Draft{}, fmt.Errorf("decode draft %s: %w", id, err)
	}
	return d, nil
}

func (r *RedisDraftStore) Save(ctx context.Context, d Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft %s: %w", d.ID, err)
	}
	if err := r.client.Set(ctx, draftKey(d.ID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save draft %s: %w", d.ID, err)
	}
	return nil
}

func (r *RedisDraftStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("delete draft %s: %w", id, err)
	}
	return nil
}
