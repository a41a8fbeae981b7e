package recordstore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Fields is the cell map of a record
type Fields map[string]interface{}

// Clone return shallow copy of the fields
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// String return text value of the cell. For list cells the first element is returned.
func (f Fields) String(name string) string {
	switch v := f[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
		return ""
	case []interface{}:
		if len(v) > 0 {
			return toString(v[0])
		}
		return ""
	default:
		return toString(v)
	}
}

// Strings return list value of the cell. A plain text cell become one element list.
func (f Fields) Strings(name string) []string {
	switch v := f[name].(type) {
	case nil:
		return nil
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, toString(e))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{toString(v)}
	}
}

// Int return integer value of the cell, zero when absent or not a number
func (f Fields) Int(name string) int {
	switch v := f[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	}
	return 0
}

// Decode convert a structured cell such as attachments into out
func (f Fields) Decode(name string, out interface{}) error {
	v, ok := f[name]
	if !ok || v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode field %q: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode field %q: %w", name, err)
	}
	return nil
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
