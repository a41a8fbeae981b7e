package jobpost

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/profile"
	"jobboard-backend/internal/recordstore"
)

func seedBoard(mem *recordstore.MemoryStore) {
	row := func(title, status, vis, work, pay string, jobType ...string) recordstore.Fields {
		jt := make([]interface{}, 0, len(jobType))
		for _, j := range jobType {
			jt = append(jt, j)
		}
		return recordstore.Fields{
			profile.FieldJobTitle:     title,
			profile.FieldStatus:       status,
			profile.FieldVisibility:   vis,
			profile.FieldWorkType:     work,
			profile.FieldCompensation: pay,
			profile.FieldJobType:      jt,
			profile.FieldDescription:  "<p>" + title + "</p>",
		}
	}
	mem.Seed(profile.TableJobPostings,
		row("Go Intern", "Approved", "Show", "Remote", "Paid", "Internship"),
		row("Data Analyst", "Approved", "Show", "In person", "Unpaid", "Full-time"),
		row("Hidden Go Role", "Approved", "Hide", "Remote", "Paid", "Internship"),
		row("Pending Go Role", "Not approved", "Show", "Remote", "Paid", "Internship"),
	)
}

func TestBoardList_filters(t *testing.T) {
	mem := recordstore.NewMemoryStore()
	seedBoard(mem)
	board := NewBoard(profile.NewStore(mem, nil))
	ctx := context.Background()

	tests := []struct {
		name   string
		filter model.JobBoardFilter
		want   []string
	}{
		{"all approved and visible", model.JobBoardFilter{}, []string{"Go Intern", "Data Analyst"}},
		{"keyword is case insensitive", model.JobBoardFilter{Keyword: "go"}, []string{"Go Intern"}},
		{"work type", model.JobBoardFilter{WorkTypes: []string{"In person"}}, []string{"Data Analyst"}},
		{"payment type", model.JobBoardFilter{PaymentTypes: []string{"Paid", "Unpaid"}}, []string{"Go Intern", "Data Analyst"}},
		{"job type", model.JobBoardFilter{JobTypes: []string{"Full-time"}}, []string{"Data Analyst"}},
		{"category", model.JobBoardFilter{Category: "Internship"}, []string{"Go Intern"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := board.List(ctx, tt.filter)
			require.NoError(t, err)
			titles := make([]string, 0, len(page.Jobs))
			for _, j := range page.Jobs {
				titles = append(titles, j.Title)
			}
			assert.ElementsMatch(t, tt.want, titles)
		})
	}

	_, err := board.List(ctx, model.JobBoardFilter{Category: "Contract"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestBoardList_pagination(t *testing.T) {
	mem := recordstore.NewMemoryStore()
	for i := 0; i < 23; i++ {
		mem.Seed(profile.TableJobPostings, recordstore.Fields{
			profile.FieldJobTitle:   fmt.Sprintf("Job %d", i),
			profile.FieldStatus:     "Approved",
			profile.FieldVisibility: "Show",
		})
	}
	board := NewBoard(profile.NewStore(mem, nil))
	ctx := context.Background()

	first, err := board.List(ctx, model.JobBoardFilter{})
	require.NoError(t, err)
	assert.Len(t, first.Jobs, 10)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.HasNextPage)

	last, err := board.List(ctx, model.JobBoardFilter{Page: 3})
	require.NoError(t, err)
	assert.Len(t, last.Jobs, 3)
	assert.False(t, last.HasNextPage)

	beyond, err := board.List(ctx, model.JobBoardFilter{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, beyond.Jobs)
	assert.NotNil(t, beyond.Jobs)

	huge, err := board.List(ctx, model.JobBoardFilter{Page: math.MaxInt64/PageSize + 1})
	require.NoError(t, err)
	assert.Empty(t, huge.Jobs)
	assert.Equal(t, 3, huge.TotalPages)
	assert.False(t, huge.HasNextPage)
}

func TestPreferredCategory(t *testing.T) {
	mem := recordstore.NewMemoryStore()
	mem.Seed(profile.TableInternship, recordstore.Fields{profile.FieldEmail: "intern@uni.edu"})
	mem.Seed(profile.TableFullTime, recordstore.Fields{profile.FieldEmail: "grad@uni.edu"}, recordstore.Fields{profile.FieldEmail: "intern@uni.edu"})
	board := NewBoard(profile.NewStore(mem, nil))
	ctx := context.Background()

	got, err := board.PreferredCategory(ctx, "intern@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, CategoryInternship, got)

	got, err = board.PreferredCategory(ctx, "grad@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, CategoryFullTime, got)

	got, err = board.PreferredCategory(ctx, "new@uni.edu")
	require.NoError(t, err)
	assert.Empty(t, got)
}
