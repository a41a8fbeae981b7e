package airtable

import (
	"fmt"
	"strings"

	"jobboard-backend/internal/recordstore"
)

// Formula render a filter as an Airtable formula, empty string for nil filter
func Formula(f recordstore.Filter) string {
	switch t := f.(type) {
	case nil:
		return ""
	case recordstore.EqFilter:
		return fmt.Sprintf("%s = %s", field(t.Field), quote(t.Value))
	case recordstore.ContainsFilter:
		return fmt.Sprintf("FIND(LOWER(%s), LOWER(%s))", quote(t.Value), field(t.Field))
	case recordstore.HasFilter:
		return fmt.Sprintf("FIND(%s, ',' & ARRAYJOIN(%s, ',') & ',')", quote(","+t.Value+","), field(t.Field))
	case recordstore.AndFilter:
		if len(t) == 0 {
			return "TRUE()"
		}
		return join("AND", t)
	case recordstore.OrFilter:
		if len(t) == 0 {
			return "FALSE()"
		}
		return join("OR", t)
	}
	return ""
}

func join(fn string, filters []recordstore.Filter) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, Formula(f))
	}
	return fn + "(" + strings.Join(parts, ", ") + ")"
}

func field(name string) string {
	return "{" + strings.ReplaceAll(name, "}", `\}`) + "}"
}

// quote escape value as a single quoted formula string literal
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
