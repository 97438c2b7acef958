// Package aiclient is a minimal client for the external text-completion
// service (the Anthropic Messages API). One prompt in, one completion out:
// no retries, no streaming, no partial results.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the completion service endpoint
	DefaultBaseURL = "https://api.anthropic.com"
	// Model is the completion model used for evaluations
	Model = "claude-sonnet-4-20250514"
	// MaxTokens bounds the completion length
	MaxTokens = 4000
	// APIVersion is the service API version header value
	APIVersion = "2023-06-01"
)

// APIError carries the upstream error status and message. Status is 0 when
// the request never reached the service (transport failure).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("completion service unreachable: %s", e.Message)
	}
	return fmt.Sprintf("completion service error (%d): %s", e.Status, e.Message)
}

// Client calls the completion service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client against the default endpoint.
func NewClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// NewClientWithBaseURL creates a Client against a custom endpoint (used in
// tests and by the proxy).
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one prompt and returns the generated text. A non-success
// response surfaces as *APIError mirroring the upstream status and message.
func (c *Client) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	payload, err := json.Marshal(messagesRequest{
		Model:     Model,
		MaxTokens: MaxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", APIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Status: 0, Message: err.Error()}
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", &APIError{Status: 0, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		msg := fmt.Sprintf("completion API error (%d)", resp.StatusCode)
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return "", &APIError{Status: resp.StatusCode, Message: msg}
	}

	var out messagesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &APIError{Status: 0, Message: fmt.Sprintf("decoding response: %v", err)}
	}

	var parts []string
	for _, block := range out.Content {
		if block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n"), nil
}
