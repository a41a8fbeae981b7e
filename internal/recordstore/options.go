package recordstore

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options configure the local backends (memory and postgres) so they behave like the hosted base
type Options struct {
	// UniqueKeys map table name to the fields forming its unique key
	UniqueKeys map[string][]string
	// TouchField is stamped with the modification time on every write, like a last-modified cell
	TouchField string
}

// Option mutate Options
type Option func(*Options)

// WithUniqueKey declare that no two records of table share the same values of fields
func WithUniqueKey(table string, fields ...string) Option {
	return func(o *Options) {
		if o.UniqueKeys == nil {
			o.UniqueKeys = map[string][]string{}
		}
		o.UniqueKeys[table] = fields
	}
}

// TouchLayout is fixed width so stamped times sort lexically
const TouchLayout = "2006-01-02T15:04:05.000000Z07:00"

// WithTouchField stamp field with modification time on create and update
func WithTouchField(field string) Option {
	return func(o *Options) { o.TouchField = field }
}

// NewOptions apply opts on zero Options
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NaturalKey compute the unique key of fields in table.
// It report false when the table has no key or a key cell is empty.
func (o Options) NaturalKey(table string, fields Fields) (string, bool) {
	keyFields, ok := o.UniqueKeys[table]
	if !ok || len(keyFields) == 0 {
		return "", false
	}
	parts := make([]string, 0, len(keyFields))
	for _, name := range keyFields {
		v := strings.Join(fields.Strings(name), ",")
		if v == "" {
			return "", false
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, "\x1f"), true
}

// Touch stamp the touch field, if configured
func (o Options) Touch(fields Fields, now time.Time) {
	if o.TouchField != "" {
		fields[o.TouchField] = now.UTC().Format(TouchLayout)
	}
}

// NewRecordID generate id in the shape of hosted record ids
func NewRecordID() string {
	return "rec" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}

// SortRecords stable sort records by the given sort fields
func SortRecords(records []Record, sorts []Sort) {
	if len(sorts) == 0 {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		for _, s := range sorts {
			c := compareCells(records[i].Fields.String(s.Field), records[j].Fields.String(s.Field))
			if c == 0 {
				continue
			}
			if s.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
