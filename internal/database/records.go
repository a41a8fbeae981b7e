package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/recordstore"
)

// pgUniqueViolation is the postgres error code of a unique index violation
const pgUniqueViolation = "23505"

// RecordStore implement recordstore.Store on the records table
type RecordStore struct {
	db   *DBinstanceStruct
	opts recordstore.Options
	now  func() time.Time
}

// Records return record store backed by this database
func (d *DBinstanceStruct) Records(opts ...recordstore.Option) *RecordStore {
	return &RecordStore{db: d, opts: recordstore.NewOptions(opts...), now: time.Now}
}

// Select implements recordstore.Store
func (r *RecordStore) Select(ctx context.Context, table string, q recordstore.Query) ([]recordstore.Record, error) {
	tx := r.db.WithContext(ctx).Model(&model.Record{}).Where("table_name = ?", table)

	if q.Filter != nil {
		tx = tx.Where(filterExpr(q.Filter))
	}
	for _, s := range q.Sort {
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		tx = tx.Order(clause.OrderBy{Expression: clause.Expr{SQL: "fields ->> ?::text " + dir, Vars: []interface{}{s.Field}}})
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}})
	if q.MaxRecords > 0 {
		tx = tx.Limit(q.MaxRecords)
	}

	var rows []model.Record
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	out := make([]recordstore.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRecord(row))
	}
	return out, nil
}

// Find implements recordstore.Store
func (r *RecordStore) Find(ctx context.Context, table string, id string) (recordstore.Record, error) {
	var row model.Record
	if err := r.db.WithContext(ctx).Where("table_name = ? AND id = ?", table, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return recordstore.Record{}, fmt.Errorf("%s/%s: %w", table, id, recordstore.ErrNotFound)
		}
		return recordstore.Record{}, fmt.Errorf("find %s/%s: %w", table, id, err)
	}
	return toRecord(row), nil
}

// Create implements recordstore.Store
func (r *RecordStore) Create(ctx context.Context, table string, fields recordstore.Fields) (recordstore.Record, error) {
	cells := recordstore.Fields{}
	for k, v := range fields {
		if v != nil {
			cells[k] = v
		}
	}
	r.opts.Touch(cells, r.now())

	row := model.Record{
		ID:         recordstore.NewRecordID(),
		Table:      table,
		NaturalKey: r.naturalKey(table, cells),
		Fields:     model.JSONFields(cells),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return recordstore.Record{}, translate(fmt.Sprintf("create %s", table), err)
	}
	return toRecord(row), nil
}

// Update implements recordstore.Store. The row is locked while fields are merged.
func (r *RecordStore) Update(ctx context.Context, table string, id string, fields recordstore.Fields) (recordstore.Record, error) {
	var row model.Record
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("table_name = ? AND id = ?", table, id).
			First(&row).Error; err != nil {
			return err
		}

		merged := recordstore.Fields(row.Fields).Clone()
		for k, v := range fields {
			if v == nil {
				delete(merged, k)
				continue
			}
			merged[k] = v
		}
		r.opts.Touch(merged, r.now())

		row.Fields = model.JSONFields(merged)
		row.NaturalKey = r.naturalKey(table, merged)
		return tx.Save(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return recordstore.Record{}, fmt.Errorf("%s/%s: %w", table, id, recordstore.ErrNotFound)
		}
		return recordstore.Record{}, translate(fmt.Sprintf("update %s/%s", table, id), err)
	}
	return toRecord(row), nil
}

// Destroy implements recordstore.Store
func (r *RecordStore) Destroy(ctx context.Context, table string, id string) error {
	result := r.db.WithContext(ctx).Where("table_name = ? AND id = ?", table, id).Delete(&model.Record{})
	if result.Error != nil {
		return fmt.Errorf("destroy %s/%s: %w", table, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s/%s: %w", table, id, recordstore.ErrNotFound)
	}
	return nil
}

// Truncate delete every record of table and return how many were removed
func (r *RecordStore) Truncate(ctx context.Context, table string) (int64, error) {
	result := r.db.WithContext(ctx).Where("table_name = ?", table).Delete(&model.Record{})
	return result.RowsAffected, result.Error
}

func (r *RecordStore) naturalKey(table string, fields recordstore.Fields) *string {
	key, ok := r.opts.NaturalKey(table, fields)
	if !ok {
		return nil
	}
	return &key
}

func toRecord(row model.Record) recordstore.Record {
	return recordstore.Record{
		ID:          row.ID,
		CreatedTime: row.CreatedAt,
		Fields:      recordstore.Fields(row.Fields),
	}
}

func translate(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %w", op, recordstore.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// filterExpr render filter as a SQL condition over the jsonb fields column
func filterExpr(f recordstore.Filter) clause.Expr {
	switch t := f.(type) {
	case recordstore.EqFilter:
		return clause.Expr{
			SQL:  "(COALESCE(fields ->> ?::text, '') = ? OR fields -> ?::text @> jsonb_build_array(?::text))",
			Vars: []interface{}{t.Field, t.Value, t.Field, t.Value},
		}
	case recordstore.ContainsFilter:
		return clause.Expr{
			SQL:  "COALESCE(fields ->> ?::text, '') ILIKE ?",
			Vars: []interface{}{t.Field, "%" + escapeLike(t.Value) + "%"},
		}
	case recordstore.HasFilter:
		return clause.Expr{
			SQL:  "fields -> ?::text @> jsonb_build_array(?::text)",
			Vars: []interface{}{t.Field, t.Value},
		}
	case recordstore.AndFilter:
		return joinExpr(t, " AND ", "TRUE")
	case recordstore.OrFilter:
		return joinExpr(t, " OR ", "FALSE")
	}
	return clause.Expr{SQL: "TRUE"}
}

func joinExpr(filters []recordstore.Filter, sep, empty string) clause.Expr {
	if len(filters) == 0 {
		return clause.Expr{SQL: empty}
	}
	parts := make([]string, 0, len(filters))
	var vars []interface{}
	for _, f := range filters {
		e := filterExpr(f)
		parts = append(parts, e.SQL)
		vars = append(vars, e.Vars...)
	}
	return clause.Expr{SQL: "(" + strings.Join(parts, sep) + ")", Vars: vars}
}

func escapeLike(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(v)
}
