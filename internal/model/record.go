package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// JSONFields is a jsonb column holding the cells of one record
type JSONFields map[string]interface{}

// Value implements driver.Valuer
func (f JSONFields) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner
func (f *JSONFields) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = JSONFields{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for JSONFields")
	}
	out := JSONFields{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*f = out
	return nil
}

// Record is gorm model for one row of a named table in the postgres record store.
// NaturalKey is only set for tables declaring unique key fields.
type Record struct {
	ID         string     `gorm:"primaryKey;type:text" json:"id"`
	Table      string     `gorm:"column:table_name;type:text;not null;index;uniqueIndex:idx_records_natural_key" json:"table"`
	NaturalKey *string    `gorm:"type:text;uniqueIndex:idx_records_natural_key" json:"-"`
	Fields     JSONFields `gorm:"type:jsonb;not null;default:'{}'" json:"fields"`
	CreatedAt  time.Time  `json:"created_time"`
	UpdatedAt  time.Time  `json:"updated_time"`
}
