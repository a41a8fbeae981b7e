package jobpost

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svc "jobboard-backend/internal/jobpost"
	"jobboard-backend/internal/middleware"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/profile"
	"jobboard-backend/internal/recordstore"
	"jobboard-backend/internal/testutil"
)

var (
	owner    = model.Identity{ID: "u1", Email: "rita@acme.co", Role: model.RoleRecruiter, DisplayName: "Rita"}
	stranger = model.Identity{ID: "u2", Email: "sam@other.co", Role: model.RoleRecruiter}
	seeker   = model.Identity{ID: "u3", Email: "stu@uni.edu", Role: model.RoleJobseeker}
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setup() (*gin.Engine, *recordstore.MemoryStore) {
	mem := recordstore.NewMemoryStore(recordstore.WithTouchField(profile.FieldUpdatedAt))
	store := profile.NewStore(mem, nil)
	postings := svc.NewService(store, nil)
	jc := NewJobPostController(svc.NewWizard(svc.NewMemoryDraftStore(), postings), postings, svc.NewBoard(store), nil)

	r := gin.New()
	auth := r.Group("", middleware.RequireAuth(testutil.Verifier, nil))

	recruiter := auth.Group("/jobposts", middleware.CheckRole(model.RoleRecruiter))
	recruiter.POST("/drafts", jc.StartDraft)
	recruiter.GET("/drafts/:draft_id", jc.GetDraft)
	recruiter.PATCH("/drafts/:draft_id", jc.UpdateDraft)
	recruiter.POST("/drafts/:draft_id/next", jc.NextStep)
	recruiter.POST("/drafts/:draft_id/back", jc.PreviousStep)
	recruiter.POST("/drafts/:draft_id/submit", jc.SubmitDraft)
	recruiter.POST("", jc.CreatePosting)
	recruiter.GET("", jc.ListMyPostings)
	recruiter.PATCH("/:id", jc.EditPosting)
	recruiter.PUT("/:id/visibility", jc.SetVisibility)
	recruiter.DELETE("/:id", jc.DeletePosting)

	auth.GET("/jobs", jc.ListJobs)
	auth.GET("/jobseeker/preferred-category", middleware.CheckRole(model.RoleJobseeker), jc.PreferredCategory)
	return r, mem
}

func validForm() gin.H {
	return gin.H{
		"title":              "Go Intern",
		"start_date":         "06/01/2025",
		"end_date":           "08/31/2025",
		"work_type":          "Remote",
		"hours_per_week":     20,
		"compensation":       "Paid",
		"job_type":           []string{"Internship"},
		"description":        "<p>Build <b>services</b> in Go.</p>",
		"application_method": model.MethodInternalATS,
	}
}

func TestWizard_fullFlow(t *testing.T) {
	r, mem := setup()
	token := testutil.Token(t, owner)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobposts/drafts", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	base := "/jobposts/drafts/" + resp["id"].(string)
	assert.Equal(t, "Basic Information", resp["step_name"])

	rec, resp = testutil.MakeJSONRequest(nil, token, r, base+"/next", http.MethodPost)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, resp["field_errors"], "title")
	assert.Equal(t, float64(0), resp["draft"].(map[string]interface{})["step"])

	rec, _ = testutil.MakeJSONRequest(validForm(), token, r, base, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, base+"/submit", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for i := 0; i < len(svc.Steps)-1; i++ {
		rec, resp = testutil.MakeJSONRequest(nil, token, r, base+"/next", http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	assert.Equal(t, "Application Method", resp["step_name"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, base+"/back", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = testutil.MakeJSONRequest(nil, token, r, base+"/next", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, token, r, base+"/submit", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, model.JobStatusNotApproved, resp["status"])
	_, err := mem.Find(context.Background(), profile.TableJobPostings, resp["id"].(string))
	assert.NoError(t, err)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, base, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWizard_foreignDraftAndJobseeker(t *testing.T) {
	r, _ := setup()

	_, resp := testutil.MakeJSONRequest(nil, testutil.Token(t, owner), r, "/jobposts/drafts", http.MethodPost)
	rec, _ := testutil.MakeJSONRequest(nil, testutil.Token(t, stranger), r, "/jobposts/drafts/"+resp["id"].(string), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, testutil.Token(t, seeker), r, "/jobposts/drafts", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPostings_manage(t *testing.T) {
	r, _ := setup()
	token := testutil.Token(t, owner)

	rec, resp := testutil.MakeJSONRequest(validForm(), token, r, "/jobposts", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	path := "/jobposts/" + resp["id"].(string)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/jobposts", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"excerpt":"Build services in Go."`)

	edited := validForm()
	edited["title"] = "Senior Go Intern"
	rec, resp = testutil.MakeJSONRequest(edited, token, r, path, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Senior Go Intern", resp["title"])

	rec, _ = testutil.MakeJSONRequest(edited, testutil.Token(t, stranger), r, path, http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = testutil.MakeJSONRequest(gin.H{"show": false}, token, r, path+"/visibility", http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.VisibilityHide, resp["visibility"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, path, http.MethodDelete)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, path+"?confirm=true", http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, path+"?confirm=true", http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostings_invalidForm(t *testing.T) {
	r, _ := setup()
	form := validForm()
	form["application_method"] = model.MethodEmail

	rec, resp := testutil.MakeJSONRequest(form, testutil.Token(t, owner), r, "/jobposts", http.MethodPost)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, resp["field_errors"], "contact_email")
}

func TestListJobs(t *testing.T) {
	r, mem := setup()
	mem.Seed(profile.TableJobPostings,
		recordstore.Fields{profile.FieldJobTitle: "Go Intern", profile.FieldStatus: model.JobStatusApproved, profile.FieldVisibility: "Show",
			profile.FieldWorkType: "Remote", profile.FieldCompensation: "Paid", profile.FieldJobType: []interface{}{"Internship"}},
		recordstore.Fields{profile.FieldJobTitle: "Analyst", profile.FieldStatus: model.JobStatusApproved, profile.FieldVisibility: "Show",
			profile.FieldWorkType: "In person", profile.FieldCompensation: "Unpaid", profile.FieldJobType: []interface{}{"Full-time"}},
		recordstore.Fields{profile.FieldJobTitle: "Pending", profile.FieldStatus: model.JobStatusNotApproved, profile.FieldVisibility: "Show"},
	)
	token := testutil.Token(t, seeker)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp["jobs"], 2)
	assert.Equal(t, float64(1), resp["total_pages"])
	assert.Equal(t, false, resp["has_next_page"])

	_, resp = testutil.MakeJSONRequest(nil, token, r, "/jobs?work_types=Remote,Hybrid&payment_types=Paid", http.MethodGet)
	require.Len(t, resp["jobs"], 1)
	assert.Equal(t, "Go Intern", resp["jobs"].([]interface{})[0].(map[string]interface{})["title"])

	_, resp = testutil.MakeJSONRequest(nil, token, r, "/jobs?category=Full-time", http.MethodGet)
	assert.Len(t, resp["jobs"], 1)

	_, resp = testutil.MakeJSONRequest(nil, token, r, "/jobs?page=3", http.MethodGet)
	assert.Empty(t, resp["jobs"])

	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/jobs?page=922337203685477581", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp["jobs"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/jobs?category=Contract", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/jobs?page=zero", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreferredCategory(t *testing.T) {
	r, mem := setup()
	token := testutil.Token(t, seeker)

	_, resp := testutil.MakeJSONRequest(nil, token, r, "/jobseeker/preferred-category", http.MethodGet)
	assert.Equal(t, "", resp["category"])

	mem.Seed(profile.TableFullTime, recordstore.Fields{profile.FieldEmail: seeker.Email})
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/jobseeker/preferred-category", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, svc.CategoryFullTime, resp["category"])
}
