package candidate

import (
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svc "jobboard-backend/internal/candidate"
	"jobboard-backend/internal/middleware"
	"jobboard-backend/internal/model"
	"jobboard-backend/internal/profile"
	"jobboard-backend/internal/recordstore"
	"jobboard-backend/internal/testutil"
)

var (
	recruiter = model.Identity{ID: "u1", Email: "rita@acme.co", Role: model.RoleRecruiter}
	seeker    = model.Identity{ID: "u2", Email: "stu@uni.edu", Role: model.RoleJobseeker}
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setup(t *testing.T) (*gin.Engine, []recordstore.Record) {
	t.Helper()
	mem := recordstore.NewMemoryStore()
	recs := mem.Seed(profile.TableCandidates,
		recordstore.Fields{profile.FieldCandidateName: "Bo", profile.FieldOrderID: "ord-1", profile.FieldVisibility: "Show", profile.FieldRecommendation: []interface{}{"B"}},
		recordstore.Fields{profile.FieldCandidateName: "Abe", profile.FieldOrderID: "ord-1", profile.FieldVisibility: "Show", profile.FieldRecommendation: []interface{}{"A"}, profile.FieldMajor: "CS"},
	)
	service := svc.NewService(profile.NewStore(mem, nil), svc.NewMemoryExpansionStore(), svc.UnknownFirst, nil)
	cc := NewCandidateController(service, nil)

	r := gin.New()
	g := r.Group("", middleware.RequireAuth(testutil.Verifier, nil), middleware.CheckRole(model.RoleRecruiter))
	g.GET("/orders/:order_id/candidates", cc.ListCandidates)
	g.GET("/orders/:order_id/expansion", cc.GetExpansion)
	g.POST("/orders/:order_id/expansion", cc.ToggleExpansion)
	g.POST("/orders/:order_id/candidates/:candidate_id/decline", cc.DeclineCandidate)
	g.GET("/candidates/:candidate_id", cc.GetCandidate)
	return r, recs
}

func TestListCandidates_ranked(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, testutil.Token(t, recruiter), r, "/orders/ord-1/candidates", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	candidates := resp["candidates"].([]interface{})
	require.Len(t, candidates, 2)
	assert.Equal(t, "Abe", candidates[0].(map[string]interface{})["name"])
	assert.Equal(t, "Top Choice", candidates[0].(map[string]interface{})["recommendation_label"])
	assert.Nil(t, resp["expanded_index"])
}

func TestListCandidates_emptyOrder(t *testing.T) {
	r, _ := setup(t)

	rec, resp := testutil.MakeJSONRequest(nil, testutil.Token(t, recruiter), r, "/orders/ord-9/candidates", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp["candidates"])
	assert.Equal(t, svc.EmptyMessage, resp["message"])
}

func TestListCandidates_jobseekerForbidden(t *testing.T) {
	r, _ := setup(t)

	rec, _ := testutil.MakeJSONRequest(nil, testutil.Token(t, seeker), r, "/orders/ord-1/candidates", http.MethodGet)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestToggleExpansion(t *testing.T) {
	r, _ := setup(t)
	token := testutil.Token(t, recruiter)

	rec, resp := testutil.MakeJSONRequest(gin.H{"index": 1}, token, r, "/orders/ord-1/expansion", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["expanded_index"])

	_, resp = testutil.MakeJSONRequest(nil, token, r, "/orders/ord-1/expansion", http.MethodGet)
	assert.Equal(t, float64(1), resp["expanded_index"])

	_, resp = testutil.MakeJSONRequest(gin.H{"index": 1}, token, r, "/orders/ord-1/expansion", http.MethodPost)
	assert.Nil(t, resp["expanded_index"])

	rec, _ = testutil.MakeJSONRequest(gin.H{"index": -2}, token, r, "/orders/ord-1/expansion", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{}, token, r, "/orders/ord-1/expansion", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeclineCandidate(t *testing.T) {
	r, recs := setup(t)
	token := testutil.Token(t, recruiter)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/orders/ord-1/candidates/"+recs[1].ID+"/decline", http.MethodPost)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	candidates := resp["candidates"].([]interface{})
	require.Len(t, candidates, 1)
	assert.Equal(t, "Bo", candidates[0].(map[string]interface{})["name"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/orders/ord-2/candidates/"+recs[0].ID+"/decline", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCandidate(t *testing.T) {
	r, recs := setup(t)
	token := testutil.Token(t, recruiter)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/candidates/"+recs[1].ID, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CS", resp["major"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/candidates/recMissing", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
