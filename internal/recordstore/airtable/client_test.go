package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-backend/internal/recordstore"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "appBase", "pat-token", 5*time.Second)
}

func TestSelect_followsOffsetAndSendsFormula(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer pat-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/appBase/Candidate-Client Profile", r.URL.Path)
		assert.Equal(t, "AND({Order ID} = 'ord-1', {Show/Hide} = 'Show')", r.URL.Query().Get("filterByFormula"))
		assert.Equal(t, "Updated_at", r.URL.Query().Get("sort[0][field]"))
		assert.Equal(t, "desc", r.URL.Query().Get("sort[0][direction]"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("offset") == "" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"records": []map[string]interface{}{{"id": "rec1", "fields": map[string]interface{}{"Candidate Name": "Jane"}}},
				"offset":  "page2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"records": []map[string]interface{}{{"id": "rec2", "fields": map[string]interface{}{"Candidate Name": "Joe"}}},
		})
	})

	recs, err := c.Select(context.Background(), "Candidate-Client Profile", recordstore.Query{
		Filter: recordstore.And(recordstore.Eq("Order ID", "ord-1"), recordstore.Eq("Show/Hide", "Show")),
		Sort:   []recordstore.Sort{{Field: "Updated_at", Desc: true}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, recs, 2)
	assert.Equal(t, "rec1", recs[0].ID)
	assert.Equal(t, "Joe", recs[1].Fields.String("Candidate Name"))
}

func TestSelect_maxRecordsStopsPaging(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("maxRecords"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"records": []map[string]interface{}{{"id": "rec1", "fields": map[string]interface{}{}}},
			"offset":  "more",
		})
	})

	recs, err := c.Select(context.Background(), "Job Board Clients", recordstore.Query{MaxRecords: 1})

	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestCreate_sendsFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body struct {
			Fields map[string]interface{} `json:"fields"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Interview", body.Fields["Would you like to interview this candidate?"])
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "recNew", "fields": body.Fields})
	})

	rec, err := c.Create(context.Background(), "Candidate-Client Feedback", recordstore.Fields{
		"Would you like to interview this candidate?": "Interview",
	})

	require.NoError(t, err)
	assert.Equal(t, "recNew", rec.ID)
}

func TestUpdate_usesPatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/appBase/Job Postings/rec9", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "rec9", "fields": map[string]interface{}{"Show/Hide": "Hide"}})
	})

	rec, err := c.Update(context.Background(), "Job Postings", "rec9", recordstore.Fields{"Show/Hide": "Hide"})

	require.NoError(t, err)
	assert.Equal(t, "Hide", rec.Fields.String("Show/Hide"))
}

func TestErrors_mapToSentinels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, recordstore.ErrNotFound},
		{"invalid", http.StatusUnprocessableEntity, recordstore.ErrInvalidRequest},
		{"rate limited", http.StatusTooManyRequests, recordstore.ErrUnavailable},
		{"server error", http.StatusBadGateway, recordstore.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"type":"X","message":"boom"}}`))
			})

			err := c.Destroy(context.Background(), "Job Postings", "rec1")

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFind_contextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Find(ctx, "Job Postings", "rec1")

	assert.ErrorIs(t, err, context.Canceled)
}
