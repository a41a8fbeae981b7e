package recordstore

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used for local development and tests
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]Record
	opts   Options
	now    func() time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		tables: map[string][]Record{},
		opts:   NewOptions(opts...),
		now:    time.Now,
	}
}

// Select implements Store
func (m *MemoryStore) Select(ctx context.Context, table string, q Query) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Record{}
	for _, rec := range m.tables[table] {
		if Match(q.Filter, rec.Fields) {
			out = append(out, copyRecord(rec))
		}
	}
	SortRecords(out, q.Sort)
	if q.MaxRecords > 0 && len(out) > q.MaxRecords {
		out = out[:q.MaxRecords]
	}
	return out, nil
}

// Find implements Store
func (m *MemoryStore) Find(ctx context.Context, table string, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(table, id)
	if i < 0 {
		return Record{}, fmt.Errorf("%s/%s: %w", table, id, ErrNotFound)
	}
	return copyRecord(m.tables[table][i]), nil
}

// Create implements Store
func (m *MemoryStore) Create(ctx context.Context, table string, fields Fields) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	rec := Record{ID: NewRecordID(), CreatedTime: now, Fields: withoutNil(fields)}
	m.opts.Touch(rec.Fields, now)
	if err := m.checkUnique(table, "", rec.Fields); err != nil {
		return Record{}, err
	}
	m.tables[table] = append(m.tables[table], rec)
	return copyRecord(rec), nil
}

// Update implements Store
func (m *MemoryStore) Update(ctx context.Context, table string, id string, fields Fields) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(table, id)
	if i < 0 {
		return Record{}, fmt.Errorf("%s/%s: %w", table, id, ErrNotFound)
	}
	merged := m.tables[table][i].Fields.Clone()
	for k, v := range fields {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	m.opts.Touch(merged, m.now())
	if err := m.checkUnique(table, id, merged); err != nil {
		return Record{}, err
	}
	m.tables[table][i].Fields = merged
	return copyRecord(m.tables[table][i]), nil
}

// Destroy implements Store
func (m *MemoryStore) Destroy(ctx context.Context, table string, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(table, id)
	if i < 0 {
		return fmt.Errorf("%s/%s: %w", table, id, ErrNotFound)
	}
	rows := m.tables[table]
	m.tables[table] = append(rows[:i:i], rows[i+1:]...)
	return nil
}

// Seed insert fields as new records of table, it is meant for fixtures
func (m *MemoryStore) Seed(table string, rows ...Fields) []Record {
	out := make([]Record, 0, len(rows))
	for _, f := range rows {
		rec, err := m.Create(context.Background(), table, f)
		if err == nil {
			out = append(out, rec)
		}
	}
	return out
}

func (m *MemoryStore) indexOf(table, id string) int {
	for i, rec := range m.tables[table] {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func (m *MemoryStore) checkUnique(table, selfID string, fields Fields) error {
	key, ok := m.opts.NaturalKey(table, fields)
	if !ok {
		return nil
	}
	for _, rec := range m.tables[table] {
		if rec.ID == selfID {
			continue
		}
		if other, ok := m.opts.NaturalKey(table, rec.Fields); ok && other == key {
			return fmt.Errorf("%s: %w", table, ErrConflict)
		}
	}
	return nil
}

func copyRecord(r Record) Record {
	return Record{ID: r.ID, CreatedTime: r.CreatedTime, Fields: r.Fields.Clone()}
}

func withoutNil(fields Fields) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		if v != nil {
			out[k] = v
		}
	}
	return out
}
