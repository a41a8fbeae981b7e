package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/profile"
	"jobboard-backend/internal/recordstore"
)

func newTestService(t *testing.T) (*Service, *recordstore.MemoryStore, string) {
	t.Helper()
	mem := recordstore.NewMemoryStore(recordstore.WithUniqueKey(profile.TableFeedback, profile.FeedbackKey...))
	recs := mem.Seed(profile.TableCandidates, recordstore.Fields{
		profile.FieldCandidateName: "Jane Doe",
		profile.FieldOrderID:       "ord-1",
		profile.FieldVisibility:    "Show",
		profile.FieldCandidateLink: []interface{}{"Jane Doe"},
		profile.FieldClientLink:    []interface{}{"recClient"},
	})
	return NewService(profile.NewStore(mem, nil), cache.NewMemoryLocker(), nil), mem, recs[0].ID
}

func feedbackRows(t *testing.T, mem *recordstore.MemoryStore) []recordstore.Record {
	t.Helper()
	recs, err := mem.Select(context.Background(), profile.TableFeedback, recordstore.Query{})
	require.NoError(t, err)
	return recs
}

func TestSubmit_createsThenUpdates(t *testing.T) {
	svc, mem, id := newTestService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, id, "ord-1", Input{CalendlyLink: "https://calendly.com/jane-doe"})
	require.NoError(t, err)
	assert.Equal(t, model.InterviewStatus, created.Status)
	require.Len(t, feedbackRows(t, mem), 1)

	updated, err := svc.Submit(ctx, id, "ord-1", Input{Availability: "04/02/2025 04:00 PM ET"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	rows := feedbackRows(t, mem)
	require.Len(t, rows, 1)
	f := rows[0].Fields
	assert.Equal(t, "", f.String(profile.FieldCalendly))
	assert.Equal(t, "04/02/2025 04:00 PM ET", f.String(profile.FieldAvailability))
	assert.Equal(t, "Interview", f.String(profile.FieldInterviewIntent))
	assert.Equal(t, "ord-1", f.String(profile.FieldOrderID))
	assert.Equal(t, []string{"Jane Doe"}, f.Strings(profile.FieldCandidateLink))
	assert.Equal(t, []string{"recClient"}, f.Strings(profile.FieldClientLink))
}

func TestSubmit_linkedCandidateUpdatesSameRecord(t *testing.T) {
	mem := recordstore.NewMemoryStore(recordstore.WithUniqueKey(profile.TableFeedback, profile.FeedbackKey...))
	recs := mem.Seed(profile.TableCandidates, recordstore.Fields{
		profile.FieldCandidateName: "Jane Doe",
		profile.FieldOrderID:       "ord-1",
		profile.FieldVisibility:    "Show",
		profile.FieldCandidateLink: []interface{}{"recCand1"},
	})
	svc := NewService(profile.NewStore(mem, nil), cache.NewMemoryLocker(), nil)
	ctx := context.Background()

	first, err := svc.Submit(ctx, recs[0].ID, "ord-1", Input{CalendlyLink: "https://calendly.com/jane-doe"})
	require.NoError(t, err)

	form, err := svc.Prefill(ctx, recs[0].ID, "ord-1")
	require.NoError(t, err)
	assert.True(t, form.Existing)
	assert.Equal(t, first.ID, form.RecordID)
	assert.Equal(t, "https://calendly.com/jane-doe", form.CalendlyLink)

	second, err := svc.Submit(ctx, recs[0].ID, "ord-1", Input{CalendlyLink: "https://calendly.com/jane-doe/30min"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	rows := feedbackRows(t, mem)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"recCand1"}, rows[0].Fields.Strings(profile.FieldCandidateLink))
	assert.Equal(t, "https://calendly.com/jane-doe/30min", rows[0].Fields.String(profile.FieldCalendly))
}

func TestSubmit_concurrentSubmissionsKeepOneRecord(t *testing.T) {
	svc, mem, id := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(context.Background(), id, "ord-1", Input{CalendlyLink: "https://calendly.com/jane"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, feedbackRows(t, mem), 1)
}

func TestSubmit_validationError(t *testing.T) {
	svc, mem, id := newTestService(t)

	_, err := svc.Submit(context.Background(), id, "ord-1", Input{CalendlyLink: "http://calendly.com/jane"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgInvalidCalendly, verr.Fields[FieldCalendlyLink])
	assert.Empty(t, feedbackRows(t, mem))
}

func TestSubmit_candidateNotInOrder(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()
	in := Input{CalendlyLink: "https://calendly.com/jane"}

	_, err := svc.Submit(ctx, id, "ord-2", in)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Submit(ctx, "recMissing", "ord-1", in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrefill(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	form, err := svc.Prefill(ctx, id, "ord-1")
	require.NoError(t, err)
	assert.False(t, form.Existing)
	assert.Equal(t, "Jane Doe", form.CandidateName)

	_, err = svc.Submit(ctx, id, "ord-1", Input{Availability: "04/02/2025 04:00 PM ET"})
	require.NoError(t, err)

	form, err = svc.Prefill(ctx, id, "ord-1")
	require.NoError(t, err)
	assert.True(t, form.Existing)
	assert.NotEmpty(t, form.RecordID)
	assert.Equal(t, "04/02/2025 04:00 PM ET", form.Availability)
}

// racingProfiles simulate another replica creating the record between query and create
type racingProfiles struct {
	*profile.Store
	mem     *recordstore.MemoryStore
	created bool
}

func (r *racingProfiles) CreateFeedback(ctx context.Context, fb model.Feedback) (model.Feedback, error) {
	if !r.created {
		r.created = true
		r.mem.Seed(profile.TableFeedback, recordstore.Fields{
			profile.FieldCandidateLink: []interface{}{fb.CandidateName},
			profile.FieldOrderID:       fb.OrderID,
		})
	}
	return r.Store.CreateFeedback(ctx, fb)
}

func TestSubmit_conflictResolvedByUpdate(t *testing.T) {
	_, mem, id := newTestService(t)
	profiles := &racingProfiles{Store: profile.NewStore(mem, nil), mem: mem}
	svc := NewService(profiles, cache.NewMemoryLocker(), nil)

	fb, err := svc.Submit(context.Background(), id, "ord-1", Input{CalendlyLink: "https://calendly.com/jane"})

	require.NoError(t, err)
	rows := feedbackRows(t, mem)
	require.Len(t, rows, 1)
	assert.Equal(t, rows[0].ID, fb.ID)
	assert.Equal(t, "https://calendly.com/jane", rows[0].Fields.String(profile.FieldCalendly))
}

type brokenProfiles struct {
	*profile.Store
}

func (brokenProfiles) FeedbackFor(context.Context, model.FeedbackRef) (*model.Feedback, error) {
	return nil, recordstore.ErrUnavailable
}

func TestSubmit_storeFailure(t *testing.T) {
	_, mem, id := newTestService(t)
	svc := NewService(brokenProfiles{profile.NewStore(mem, nil)}, cache.NewMemoryLocker(), nil)

	_, err := svc.Submit(context.Background(), id, "ord-1", Input{CalendlyLink: "https://calendly.com/jane"})

	assert.True(t, errors.Is(err, recordstore.ErrUnavailable))
	assert.Empty(t, feedbackRows(t, mem))
}
