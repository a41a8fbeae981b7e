// Package recordstore define access to the external table store that holds every job board record.
//
// Records are addressed by table name and record id. Cells are kept as loosely typed Fields,
// the profile adapter translates them to typed models.
package recordstore

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a record id does not exist in the table
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write would duplicate a unique key of the table
	ErrConflict = errors.New("record conflicts with an existing record")
	// ErrInvalidRequest is returned when the store rejects the fields or the query
	ErrInvalidRequest = errors.New("invalid record request")
	// ErrUnavailable is returned when the store can not serve the request right now
	ErrUnavailable = errors.New("record store unavailable")
)

// Record is one row of a table
type Record struct {
	ID          string    `json:"id"`
	CreatedTime time.Time `json:"createdTime"`
	Fields      Fields    `json:"fields"`
}

// Sort order one field of the result
type Sort struct {
	Field string
	Desc  bool
}

// Query select records of a table. Zero MaxRecords means no limit.
type Query struct {
	Filter     Filter
	Sort       []Sort
	MaxRecords int
}

// Store is the record store used by every domain service
type Store interface {
	Select(ctx context.Context, table string, q Query) ([]Record, error)
	Find(ctx context.Context, table string, id string) (Record, error)
	Create(ctx context.Context, table string, fields Fields) (Record, error)
	// Update patch only given fields, a nil value clears the cell
	Update(ctx context.Context, table string, id string, fields Fields) (Record, error)
	Destroy(ctx context.Context, table string, id string) error
}
