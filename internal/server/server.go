// Package server implements the compile proxy: a small HTTP service that
// forwards prompts to the external completion service so the credential never
// has to live in a browser or other untrusted caller.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/razmans/devlog/internal/aiclient"
)

// Completer is the single call the proxy needs from the completion client.
type Completer interface {
	Complete(ctx context.Context, apiKey, prompt string) (string, error)
}

// Server is the compile proxy.
type Server struct {
	completer Completer
	logger    *zap.Logger
}

// New creates a Server around the given completion client.
func New(completer Completer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{completer: completer, logger: logger}
}

// Handler returns the proxy's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/compile", s.handleCompile)
	return mux
}

// ListenAndServe runs the proxy until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("compile proxy listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

type compileRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"apiKey"`
}

type compileResponse struct {
	Text string `json:"text,omitempty"`
	Err  string `json:"error,omitempty"`
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.APIKey == "" {
		s.writeError(w, http.StatusBadRequest, "API key is required")
		return
	}
	if req.Prompt == "" {
		s.writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	text, err := s.completer.Complete(r.Context(), req.APIKey, req.Prompt)
	if err != nil {
		status := http.StatusInternalServerError
		msg := err.Error()

		var apiErr *aiclient.APIError
		if errors.As(err, &apiErr) {
			msg = apiErr.Message
			// Mirror the upstream status; transport failures stay 500.
			if apiErr.Status > 0 {
				status = apiErr.Status
			}
		}

		s.logger.Warn("compile failed",
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("error", msg))
		s.writeError(w, status, msg)
		return
	}

	s.logger.Info("compile succeeded",
		zap.Int("prompt_bytes", len(req.Prompt)),
		zap.Int("text_bytes", len(text)),
		zap.Duration("elapsed", time.Since(start)))

	s.writeJSON(w, http.StatusOK, compileResponse{Text: text})
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, compileResponse{Err: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body compileResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("writing response", zap.Error(err))
	}
}
