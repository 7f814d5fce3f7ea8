package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnbuddy-backend/internal/services"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusOK, map[string]string{"message": "OTP sent successfully"})

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var result map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["message"] != "OTP sent successfully" {
		t.Errorf("unexpected message %q", result["message"])
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "Invalid chapter")

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}

	var result map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["error"] != "Invalid chapter" {
		t.Errorf("unexpected error body %v", result)
	}
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &services.ValidationError{Message: "All fields are required"}, http.StatusBadRequest},
		{"conflict", &services.ConflictError{Message: "This email is already registered. Please login."}, http.StatusBadRequest},
		{"not found", &services.NotFoundError{Message: "User not found"}, http.StatusNotFound},
		{"unauthorized", &services.UnauthorizedError{Message: "Invalid password"}, http.StatusBadRequest},
		{"rate limited", &services.RateLimitError{Message: "Please wait"}, http.StatusTooManyRequests},
		{"backend failure", &services.BackendError{Message: "Model backend failed"}, http.StatusInternalServerError},
		{"unknown", bytes.ErrTooLarge, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handleServiceError(rr, tc.err)

			if rr.Code != tc.status {
				t.Errorf("expected %d, got %d", tc.status, rr.Code)
			}

			var result map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if result["error"] == "" {
				t.Error("expected a non-empty error field")
			}
		})
	}
}

func TestQuizHandlers_RejectMalformedJSON(t *testing.T) {
	h := NewQuizHandler(nil)

	endpoints := []struct {
		name    string
		handler http.HandlerFunc
		path    string
	}{
		{"get-question", h.GetQuestion, "/get-question"},
		{"submit-answer", h.SubmitAnswer, "/submit-answer"},
		{"solve-question", h.SolveQuestion, "/solve-question"},
		{"chat", h.ChatSolve, "/chat"},
	}

	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, ep.path, bytes.NewReader([]byte("{not json")))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ep.handler(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for malformed body, got %d", rr.Code)
			}
		})
	}
}
