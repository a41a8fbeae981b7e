package airtable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobboard-backend/internal/recordstore"
)

func TestFormula(t *testing.T) {
	tests := []struct {
		name   string
		filter recordstore.Filter
		want   string
	}{
		{"nil", nil, ""},
		{"eq", recordstore.Eq("Email", "a@b.co"), "{Email} = 'a@b.co'"},
		{"escapes quote", recordstore.Eq("Candidate", "O'Neil"), `{Candidate} = 'O\'Neil'`},
		{"escapes backslash", recordstore.Eq("Candidate", `a\b`), `{Candidate} = 'a\\b'`},
		{
			"and",
			recordstore.And(recordstore.Eq("Candidate", "Jane"), recordstore.Eq("Order ID", "42")),
			"AND({Candidate} = 'Jane', {Order ID} = '42')",
		},
		{"empty or", recordstore.Or(), "FALSE()"},
		{"empty and", recordstore.And(), "TRUE()"},
		{"contains", recordstore.Contains("Job Title", "Go"), "FIND(LOWER('Go'), LOWER({Job Title}))"},
		{"has", recordstore.Has("Job Type", "Internship"), "FIND(',Internship,', ',' & ARRAYJOIN({Job Type}, ',') & ',')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Formula(tt.filter))
		})
	}
}
