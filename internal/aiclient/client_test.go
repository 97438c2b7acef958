package aiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestComplete_Success(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"first block"},{"type":"text","text":"second block"}]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	text, err := c.Complete(context.Background(), "test-key", "write my review")
	if err != nil {
		t.Fatalf("Complete() returned unexpected error: %v", err)
	}

	if text != "first block\nsecond block" {
		t.Errorf("text = %q, expected content blocks joined by newline", text)
	}
	if gotPath != "/v1/messages" {
		t.Errorf("request path = %q, expected /v1/messages", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q, expected %q", gotKey, "test-key")
	}
	if gotVersion != APIVersion {
		t.Errorf("anthropic-version = %q, expected %q", gotVersion, APIVersion)
	}
	if gotReq["model"] != Model {
		t.Errorf("model = %v, expected %q", gotReq["model"], Model)
	}
	if gotReq["max_tokens"] != float64(MaxTokens) {
		t.Errorf("max_tokens = %v, expected %d", gotReq["max_tokens"], MaxTokens)
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	_, err := c.Complete(context.Background(), "bad-key", "prompt")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, expected *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, expected %d", apiErr.Status, http.StatusUnauthorized)
	}
	if apiErr.Message != "invalid x-api-key" {
		t.Errorf("Message = %q, expected upstream message", apiErr.Message)
	}
}

func TestComplete_UpstreamErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	_, err := c.Complete(context.Background(), "key", "prompt")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, expected *APIError", err)
	}
	if apiErr.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, expected %d", apiErr.Status, http.StatusServiceUnavailable)
	}
	if apiErr.Message != "completion API error (503)" {
		t.Errorf("Message = %q, expected fallback message", apiErr.Message)
	}
}

func TestComplete_TransportError(t *testing.T) {
	// A closed server guarantees a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	_, err := c.Complete(context.Background(), "key", "prompt")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, expected *APIError", err)
	}
	if apiErr.Status != 0 {
		t.Errorf("Status = %d, expected 0 for transport failure", apiErr.Status)
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		err      APIError
		expected string
	}{
		{APIError{Status: 0, Message: "connection refused"}, "completion service unreachable: connection refused"},
		{APIError{Status: 429, Message: "rate limited"}, "completion service error (429): rate limited"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("Error() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestNewClientWithBaseURL_TrimsTrailingSlash(t *testing.T) {
	c := NewClientWithBaseURL("http://localhost:9999///")
	if c.baseURL != "http://localhost:9999" {
		t.Errorf("baseURL = %q, expected trailing slashes trimmed", c.baseURL)
	}
}
