// Package jobpost implement recruiter job postings: the posting wizard, management of
// own postings and the public job board.
package jobpost

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/recordstore"
)

var (
	// ErrNotFound is returned for missing postings and postings owned by someone else
	ErrNotFound = errors.New("job posting not found")
	// ErrForbidden is returned when a non recruiter manages postings
	ErrForbidden = errors.New("only recruiters can manage job postings")
	// ErrConfirmRequired is returned when delete is not confirmed
	ErrConfirmRequired = errors.New("deleting a job posting must be confirmed")
)

// Postings is the part of the profile store used for job postings
type Postings interface {
	CreateJobPosting(ctx context.Context, p model.JobPosting) (model.JobPosting, error)
	JobPosting(ctx context.Context, id string) (model.JobPosting, error)
	JobPostingsByOwner(ctx context.Context, email string) ([]model.JobPosting, error)
	ApprovedJobPostings(ctx context.Context, filter model.JobBoardFilter) ([]model.JobPosting, error)
	UpdateJobPosting(ctx context.Context, id string, p model.JobPosting) (model.JobPosting, error)
	SetJobPostingVisibility(ctx context.Context, id string, visibility string) (model.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id string) error
	HasIntake(ctx context.Context, table, email string) (bool, error)
}

// Service manage job postings of recruiters
type Service struct {
	store Postings
	log   *zap.Logger
}

// NewService creates job posting Service
func NewService(store Postings, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

func postingFromForm(form model.JobPostForm) model.JobPosting {
	return model.JobPosting{
		Title:        form.Title,
		StartDate:    form.StartDate,
		EndDate:      form.EndDate,
		WorkType:     form.WorkType,
		HoursPerWeek: form.HoursPerWeek,
		Compensation: form.Compensation,
		JobType:      form.JobType,
		Description:  form.Description,
		ATS:          form.ApplicationMode,
		ExternalLink: form.ExternalLink,
		ContactEmail: form.ContactEmail,
	}
}

func checkForm(form model.JobPostForm) (model.JobPostForm, error) {
	form = Normalize(form)
	if errs := ValidateForm(form); errs != nil {
		return form, &ValidationError{Fields: errs}
	}
	return form, nil
}

// Create validate form and create a posting awaiting approval, owned by id
func (s *Service) Create(ctx context.Context, id *model.Identity, form model.JobPostForm) (model.JobPosting, error) {
	if id == nil || !id.IsRecruiter() {
		return model.JobPosting{}, ErrForbidden
	}
	form, err := checkForm(form)
	if err != nil {
		return model.JobPosting{}, err
	}

	p := postingFromForm(form)
	p.Status = model.JobStatusNotApproved
	p.Visibility = model.VisibilityShow
	p.PosterName = id.DisplayName
	p.PosterEmail = id.Email
	p.PosterRole = id.Role

	created, err := s.store.CreateJobPosting(ctx, p)
	if err != nil {
		return model.JobPosting{}, err
	}
	s.log.Info("job posting created", zap.String("posting", created.ID), zap.String("owner", id.Email))
	return created, nil
}

// ListMine return postings of owner, most recently updated first
func (s *Service) ListMine(ctx context.Context, owner string) ([]model.JobPosting, error) {
	posts, err := s.store.JobPostingsByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Excerpt = Excerpt(posts[i].Description)
	}
	return posts, nil
}

func (s *Service) owned(ctx context.Context, id *model.Identity, postingID string) (model.JobPosting, error) {
	if id == nil || !id.IsRecruiter() {
		return model.JobPosting{}, ErrForbidden
	}
	p, err := s.store.JobPosting(ctx, postingID)
	if errors.Is(err, recordstore.ErrNotFound) {
		return model.JobPosting{}, ErrNotFound
	}
	if err != nil {
		return model.JobPosting{}, err
	}
	if !strings.EqualFold(p.PosterEmail, id.Email) {
		return model.JobPosting{}, ErrNotFound
	}
	return p, nil
}

// Edit replace the editable fields of an owned posting
func (s *Service) Edit(ctx context.Context, id *model.Identity, postingID string, form model.JobPostForm) (model.JobPosting, error) {
	if _, err := s.owned(ctx, id, postingID); err != nil {
		return model.JobPosting{}, err
	}
	form, err := checkForm(form)
	if err != nil {
		return model.JobPosting{}, err
	}
	return s.store.UpdateJobPosting(ctx, postingID, postingFromForm(form))
}

// SetVisibility show or hide an owned posting on the job board
func (s *Service) SetVisibility(ctx context.Context, id *model.Identity, postingID string, show bool) (model.JobPosting, error) {
	if _, err := s.owned(ctx, id, postingID); err != nil {
		return model.JobPosting{}, err
	}
	visibility := model.VisibilityHide
	if show {
		visibility = model.VisibilityShow
	}
	return s.store.SetJobPostingVisibility(ctx, postingID, visibility)
}

// Delete remove an owned posting. confirm must be true.
func (s *Service) Delete(ctx context.Context, id *model.Identity, postingID string, confirm bool) error {
	if !confirm {
		return ErrConfirmRequired
	}
	if _, err := s.owned(ctx, id, postingID); err != nil {
		return err
	}
	if err := s.store.DeleteJobPosting(ctx, postingID); err != nil {
		return err
	}
	s.log.Info("job posting deleted", zap.String("posting", postingID), zap.String("owner", id.Email))
	return nil
}
