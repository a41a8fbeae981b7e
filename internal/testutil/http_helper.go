// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/auth"
	"jobboard-backend/internal/model"
)

// TestSecret is the identity token secret used by handler tests
const TestSecret = "test-secret-test-secret-test-secret"

// Verifier is the token verifier matching Token
var Verifier = auth.NewVerifier(TestSecret, "")

// MakeJSONRequest is a helper function for making JSON requests in tests
func MakeJSONRequest(body interface{}, authToken string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// Token issue an hour long access token for id, signed with TestSecret
func Token(t *testing.T, id model.Identity) string {
	t.Helper()
	tok, err := Verifier.Issue(id, time.Hour)
	if err != nil {
		t.Fatalf("issue test token: %v", err)
	}
	return tok
}
