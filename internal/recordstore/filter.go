package recordstore

import "strings"

// Filter is a boolean expression over record cells.
// Backends render it to their own query language.
type Filter interface {
	isFilter()
}

// EqFilter match a cell equal to Value. A list cell matches when any element is equal.
type EqFilter struct {
	Field string
	Value string
}

// ContainsFilter match a text cell containing Value, case-insensitive
type ContainsFilter struct {
	Field string
	Value string
}

// HasFilter match a list cell having Value as an element
type HasFilter struct {
	Field string
	Value string
}

// AndFilter match when every filter match, empty And match everything
type AndFilter []Filter

// OrFilter match when any filter match, empty Or match nothing
type OrFilter []Filter

func (EqFilter) isFilter()       {}
func (ContainsFilter) isFilter() {}
func (HasFilter) isFilter()      {}
func (AndFilter) isFilter()      {}
func (OrFilter) isFilter()       {}

// Eq build equality filter
func Eq(field, value string) Filter { return EqFilter{Field: field, Value: value} }

// Contains build substring filter
func Contains(field, value string) Filter { return ContainsFilter{Field: field, Value: value} }

// Has build list membership filter
func Has(field, value string) Filter { return HasFilter{Field: field, Value: value} }

// And combine filters, nil filters are dropped
func And(filters ...Filter) Filter { return AndFilter(compact(filters)) }

// Or combine filters, nil filters are dropped
func Or(filters ...Filter) Filter { return OrFilter(compact(filters)) }

// AnyOf build Or of Eq over values, nil when values is empty
func AnyOf(field string, values []string) Filter {
	if len(values) == 0 {
		return nil
	}
	fs := make([]Filter, 0, len(values))
	for _, v := range values {
		fs = append(fs, Eq(field, v))
	}
	return Or(fs...)
}

func compact(filters []Filter) []Filter {
	out := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			out = append(out, f)
		}
	}
	return out
}

// Match evaluate filter against fields, nil filter match everything
func Match(f Filter, fields Fields) bool {
	switch t := f.(type) {
	case nil:
		return true
	case EqFilter:
		if isList(fields[t.Field]) {
			return containsValue(fields.Strings(t.Field), t.Value)
		}
		return fields.String(t.Field) == t.Value
	case ContainsFilter:
		return strings.Contains(strings.ToLower(fields.String(t.Field)), strings.ToLower(t.Value))
	case HasFilter:
		return containsValue(fields.Strings(t.Field), t.Value)
	case AndFilter:
		for _, sub := range t {
			if !Match(sub, fields) {
				return false
			}
		}
		return true
	case OrFilter:
		for _, sub := range t {
			if Match(sub, fields) {
				return true
			}
		}
		return false
	}
	return false
}

func isList(v interface{}) bool {
	switch v.(type) {
	case []string, []interface{}:
		return true
	}
	return false
}

func containsValue(values []string, v string) bool {
	for _, e := range values {
		if e == v {
			return true
		}
	}
	return false
}
