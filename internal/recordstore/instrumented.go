package recordstore

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/metrics"
)

type instrumented struct {
	next Store
}

// Instrument wrap store so every call is counted and timed
func Instrument(s Store) Store {
	return &instrumented{next: s}
}

func observe(table, op string, start time.Time, err error) {
	metrics.StoreDuration.WithLabelValues(table, op).Observe(time.Since(start).Seconds())
	metrics.StoreCalls.WithLabelValues(table, op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid"
	}
	return "error"
}

func (s *instrumented) Select(ctx context.Context, table string, q Query) (recs []Record, err error) {
	defer func(start time.Time) { observe(table, "select", start, err) }(time.Now())
	return s.next.Select(ctx, table, q)
}

func (s *instrumented) Find(ctx context.Context, table string, id string) (rec Record, err error) {
	defer func(start time.Time) { observe(table, "find", start, err) }(time.Now())
	return s.next.Find(ctx, table, id)
}

func (s *instrumented) Create(ctx context.Context, table string, fields Fields) (rec Record, err error) {
	defer func(start time.Time) { observe(table, "create", start, err) }(time.Now())
	return s.next.Create(ctx, table, fields)
}

func (s *instrumented) Update(ctx context.Context, table string, id string, fields Fields) (rec Record, err error) {
	defer func(start time.Time) { observe(table, "update", start, err) }(time.Now())
	return s.next.Update(ctx, table, id, fields)
}

func (s *instrumented) Destroy(ctx context.Context, table string, id string) (err error) {
	defer func(start time.Time) { observe(table, "destroy", start, err) }(time.Now())
	return s.next.Destroy(ctx, table, id)
}
