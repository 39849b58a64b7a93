package httputil

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondError(t *testing.T) {
	t.Run("with request id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/projects/7", nil)
		r = r.WithContext(WithRequestID(r.Context(), "req-1"))
		rec := httptest.NewRecorder()

		RespondError(rec, r, http.StatusNotFound, "project 7 not found")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Errorf("content type = %q", ct)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		want := map[string]interface{}{
			"type":       problemType(http.StatusNotFound),
			"title":      "Not Found",
			"status":     float64(404),
			"detail":     "project 7 not found",
			"instance":   "/api/projects/7",
			"request_id": "req-1",
		}
		for k, v := range want {
			if body[k] != v {
				t.Errorf("%s = %v, want %v", k, body[k], v)
			}
		}
	})

	t.Run("without request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RespondError(rec, httptest.NewRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, "")

		var body map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if _, ok := body["request_id"]; ok {
			t.Errorf("unexpected request_id in %v", body)
		}
		if _, ok := body["detail"]; ok {
			t.Errorf("empty detail should be omitted: %v", body)
		}
	})
}

func TestProblem_ExtraCannotOverrideStandardMembers(t *testing.T) {
	p := newProblem(http.StatusBadRequest, "bad")
	p.Extra = map[string]interface{}{"status": 200, "field": "name"}

	payload, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != float64(400) || body["field"] != "name" {
		t.Errorf("body = %v", body)
	}
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, math.Inf(1))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}
}
