package jobpost

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobboard-backend/internal/model"
)

// Steps of the job posting wizard in order
var Steps = []string{"Basic Information", "Job Details", "Candidate Requirements", "Application Method"}

// fields validated when leaving each step
var stepFields = [][]string{
	{"title", "start_date", "end_date"},
	{"work_type", "hours_per_week", "compensation"},
	{"job_type", "description"},
	{"application_method", "external_link", "contact_email"},
}

var (
	// ErrFirstStep is returned by Back on the first step
	ErrFirstStep = errors.New("already on the first step")
	// ErrLastStep is returned by Next on the last step
	ErrLastStep = errors.New("already on the last step")
	// ErrNotLastStep is returned when submitting before the application method step
	ErrNotLastStep = errors.New("draft can only be submitted from the last step")
)

// Wizard drive drafts through the posting steps and submit them
type Wizard struct {
	drafts DraftStore
	posts  *Service
	now    func() time.Time
}

// NewWizard creates Wizard creating postings through posts
func NewWizard(drafts DraftStore, posts *Service) *Wizard {
	return &Wizard{drafts: drafts, posts: posts, now: time.Now}
}

func (w *Wizard) save(ctx context.Context, d *Draft) error {
	d.StepName = Steps[d.Step]
	d.UpdatedAt = w.now()
	return w.drafts.Save(ctx, *d)
}

// Start open a new draft on the first step
func (w *Wizard) Start(ctx context.Context, id *model.Identity) (Draft, error) {
	if id == nil || !id.IsRecruiter() {
		return Draft{}, ErrForbidden
	}
	d := Draft{ID: uuid.NewString(), Owner: id.Email}
	if err := w.save(ctx, &d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Get return draft owned by id
func (w *Wizard) Get(ctx context.Context, id *model.Identity, draftID string) (Draft, error) {
	if id == nil {
		return Draft{}, ErrDraftNotFound
	}
	d, err := w.drafts.Get(ctx, draftID)
	if err != nil {
		return Draft{}, err
	}
	if !strings.EqualFold(d.Owner, id.Email) {
		return Draft{}, ErrDraftNotFound
	}
	return d, nil
}

// Update replace the accumulated form of the draft, the step is unchanged
func (w *Wizard) Update(ctx context.Context, id *model.Identity, draftID string, form model.JobPostForm) (Draft, error) {
	d, err := w.Get(ctx, id, draftID)
	if err != nil {
		return Draft{}, err
	}
	d.Form = form
	if err := w.save(ctx, &d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Next validate the fields of the current step and move forward by one step
func (w *Wizard) Next(ctx context.Context, id *model.Identity, draftID string) (Draft, error) {
	d, err := w.Get(ctx, id, draftID)
	if err != nil {
		return Draft{}, err
	}
	if d.Step >= len(Steps)-1 {
		return d, ErrLastStep
	}
	if errs := StepErrors(d.Form, d.Step); errs != nil {
		return d, &ValidationError{Fields: errs}
	}
	d.Step++
	if err := w.save(ctx, &d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Back move the draft back by one step
func (w *Wizard) Back(ctx context.Context, id *model.Identity, draftID string) (Draft, error) {
	d, err := w.Get(ctx, id, draftID)
	if err != nil {
		return Draft{}, err
	}
	if d.Step == 0 {
		return d, ErrFirstStep
	}
	d.Step--
	if err := w.save(ctx, &d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Submit create the job posting from a draft on the last step. The draft is
// removed on success and kept on failure so the recruiter can retry.
func (w *Wizard) Submit(ctx context.Context, id *model.Identity, draftID string) (model.JobPosting, error) {
	d, err := w.Get(ctx, id, draftID)
	if err != nil {
		return model.JobPosting{}, err
	}
	if d.Step != len(Steps)-1 {
		return model.JobPosting{}, ErrNotLastStep
	}
	posting, err := w.posts.Create(ctx, id, d.Form)
	if err != nil {
		return model.JobPosting{}, err
	}
	if err := w.drafts.Delete(ctx, d.ID); err != nil {
		w.posts.log.Warn("failed to delete submitted draft", zap.String("draft", d.ID), zap.Error(err))
	}
	return posting, nil
}

// StepErrors return the validation errors of the fields belonging to step
func StepErrors(form model.JobPostForm, step int) FieldErrors {
	all := ValidateForm(Normalize(form))
	if all == nil || step < 0 || step >= len(stepFields) {
		return nil
	}
	errs := FieldErrors{}
	for _, f := range stepFields[step] {
		if msg, ok := all[f]; ok {
			errs[f] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
