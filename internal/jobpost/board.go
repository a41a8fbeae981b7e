package jobpost

import (
	"context"
	"errors"
	"strings"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/profile"
)

// PageSize is the number of postings on one job board page
const PageSize = 10

// Category preferred by jobseekers who filled the internship or full-time intake
const (
	CategoryInternship = "Internship"
	CategoryFullTime   = "Full-time"
)

// ErrInvalidCategory is returned for a category outside Internship and Full-time
var ErrInvalidCategory = errors.New("category must be Internship or Full-time")

// Board is the public job board read by jobseekers
type Board struct {
	store Postings
}

// NewBoard creates Board
func NewBoard(store Postings) *Board {
	return &Board{store: store}
}

// List return one page of approved, visible postings matching filter
func (b *Board) List(ctx context.Context, filter model.JobBoardFilter) (model.JobBoardPage, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	if filter.Category != "" && filter.Category != CategoryInternship && filter.Category != CategoryFullTime {
		return model.JobBoardPage{}, ErrInvalidCategory
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	posts, err := b.store.ApprovedJobPostings(ctx, filter)
	if err != nil {
		return model.JobBoardPage{}, err
	}

	totalPages := (len(posts) + PageSize - 1) / PageSize
	jobs := []model.JobPosting{}
	if filter.Page <= totalPages {
		start := (filter.Page - 1) * PageSize
		end := min(start+PageSize, len(posts))
		jobs = append(jobs, posts[start:end]...)
	}
	for i := range jobs {
		jobs[i].Excerpt = Excerpt(jobs[i].Description)
	}
	return model.JobBoardPage{
		Jobs:        jobs,
		Page:        filter.Page,
		TotalPages:  totalPages,
		HasNextPage: filter.Page < totalPages,
	}, nil
}

// PreferredCategory return the category of the intake form email filled, internship first
func (b *Board) PreferredCategory(ctx context.Context, email string) (string, error) {
	ok, err := b.store.HasIntake(ctx, profile.TableInternship, email)
	if err != nil {
		return "", err
	}
	if ok {
		return CategoryInternship, nil
	}
	ok, err = b.store.HasIntake(ctx, profile.TableFullTime, email)
	if err != nil {
		return "", err
	}
	if ok {
		return CategoryFullTime, nil
	}
	return "", nil
}
