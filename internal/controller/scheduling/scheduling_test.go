package scheduling

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/middleware"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/profile"
	"jobboard-backend/internal/recordstore"
	svc "jobboard-backend/internal/scheduling"
	"jobboard-backend/internal/testutil"
)

var recruiter = model.Identity{ID: "u1", Email: "rita@acme.co", Role: model.RoleRecruiter}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type brokenFeedback struct {
	*profile.Store
}

func (brokenFeedback) CreateFeedback(context.Context, model.Feedback) (model.Feedback, error) {
	return model.Feedback{}, errors.New("airtable: 503")
}

func engine(profiles svc.Profiles) *gin.Engine {
	sc := NewSchedulingController(svc.NewService(profiles, cache.NewMemoryLocker(), nil), nil)
	r := gin.New()
	g := r.Group("", middleware.RequireAuth(testutil.Verifier, nil), middleware.CheckRole(model.RoleRecruiter))
	g.GET("/orders/:order_id/candidates/:candidate_id/schedule", sc.GetSchedule)
	g.PUT("/orders/:order_id/candidates/:candidate_id/schedule", sc.SubmitSchedule)
	return r
}

func seed() (*profile.Store, string) {
	mem := recordstore.NewMemoryStore(recordstore.WithUniqueKey(profile.TableFeedback, profile.FeedbackKey...))
	recs := mem.Seed(profile.TableCandidates, recordstore.Fields{
		profile.FieldCandidateName: "Jane Doe",
		profile.FieldOrderID:       "ord-1",
		profile.FieldVisibility:    "Show",
	})
	return profile.NewStore(mem, nil), recs[0].ID
}

func TestSchedule_submitThenPrefill(t *testing.T) {
	store, id := seed()
	r := engine(store)
	token := testutil.Token(t, recruiter)
	path := "/orders/ord-1/candidates/" + id + "/schedule"

	rec, resp := testutil.MakeJSONRequest(nil, token, r, path, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, resp["existing"])
	assert.Equal(t, "Jane Doe", resp["candidate_name"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"calendly_link": "https://calendly.com/rita/30min"}, token, r, path, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.InterviewStatus, resp["status"])

	rec, resp = testutil.MakeJSONRequest(nil, token, r, path, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["existing"])
	assert.Equal(t, "https://calendly.com/rita/30min", resp["calendly_link"])
}

func TestSchedule_validationErrors(t *testing.T) {
	store, id := seed()
	r := engine(store)
	path := "/orders/ord-1/candidates/" + id + "/schedule"

	rec, resp := testutil.MakeJSONRequest(gin.H{"calendly_link": "https://cal.com/x", "availability": "tomorrow"},
		testutil.Token(t, recruiter), r, path, http.MethodPut)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fields := resp["field_errors"].(map[string]interface{})
	assert.Equal(t, svc.MsgInvalidCalendly, fields[svc.FieldCalendlyLink])
	assert.Equal(t, svc.MsgInvalidAvailability, fields[svc.FieldAvailability])
}

func TestSchedule_candidateOutsideOrder(t *testing.T) {
	store, id := seed()
	r := engine(store)

	rec, _ := testutil.MakeJSONRequest(nil, testutil.Token(t, recruiter), r, "/orders/ord-2/candidates/"+id+"/schedule", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSchedule_storeFailureKeepsInput(t *testing.T) {
	store, id := seed()
	r := engine(brokenFeedback{store})
	body := gin.H{"availability": "10/21/2025 10:00 AM ET"}

	rec, resp := testutil.MakeJSONRequest(body, testutil.Token(t, recruiter), r, "/orders/ord-1/candidates/"+id+"/schedule", http.MethodPut)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	input := resp["input"].(map[string]interface{})
	assert.Equal(t, "10/21/2025 10:00 AM ET", input["availability"])
}
