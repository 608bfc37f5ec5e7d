// Package web serves the JSON API: activity generation, rubric
// generation, and lead registration. It is a thin boundary — all
// interesting logic lives in the llm and leads packages.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"cynllun-cli/internal/leads"
	"cynllun-cli/internal/llm"

	"go.uber.org/zap"
)

type ServerConfig struct {
	// Gen may be nil: generation endpoints then answer 500
	// (not configured) instead of failing at startup.
	Gen   llm.Generator
	Leads leads.Store
	Log   *zap.Logger
}

type Server struct {
	gen   llm.Generator
	leads leads.Store
	log   *zap.Logger
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Leads == nil {
		return nil, errors.New("web: lead store is nil")
	}
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{gen: cfg.Gen, leads: cfg.Leads, log: log}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Method patterns give non-POST requests a 405 for free.
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/rubric", s.handleRubric)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorVM struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorVM{Error: msg, Details: details})
}

type generateRequest struct {
	Context string `json:"context"`
}

type generateVM struct {
	Activities string `json:"activities"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", "")
		return
	}
	if strings.TrimSpace(req.Context) == "" {
		writeError(w, http.StatusBadRequest, "Missing context", "")
		return
	}
	if s.gen == nil {
		writeError(w, http.StatusInternalServerError, "API key not configured", "")
		return
	}

	text, err := s.gen.Activities(r.Context(), req.Context)
	if err != nil {
		s.writeGenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generateVM{Activities: text})
}

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	School    string `json:"school"`
	PlanType  string `json:"planType"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", "")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "Name and email are required", "")
		return
	}

	l := leads.Lead{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		School:   strings.TrimSpace(req.School),
		PlanType: strings.TrimSpace(req.PlanType),
	}
	if ts, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
		l.SavedAt = ts
	}

	saved, err := s.leads.Append(r.Context(), l)
	if err != nil {
		s.log.Error("append lead", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error", "")
		return
	}
	s.log.Info("new lead", zap.String("id", saved.ID), zap.String("planType", saved.PlanType))

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type rubricVM struct {
	Rubric string `json:"rubric"`
}

func (s *Server) handleRubric(w http.ResponseWriter, r *http.Request) {
	var req llm.RubricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", "")
		return
	}
	if strings.TrimSpace(req.Area) == "" &&
		strings.TrimSpace(req.CustomOutcomes) == "" &&
		strings.TrimSpace(req.TaskDescription) == "" {
		writeError(w, http.StatusBadRequest, "Please provide an area, outcomes, or task description.", "")
		return
	}
	if s.gen == nil {
		writeError(w, http.StatusInternalServerError, "API key not configured", "")
		return
	}

	text, err := s.gen.Rubric(r.Context(), req)
	if err != nil {
		s.writeGenError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rubricVM{Rubric: text})
}

// writeGenError maps gateway failures onto the API contract: missing
// configuration is the server's fault (500), everything else is the
// upstream's (502, with details).
func (s *Server) writeGenError(w http.ResponseWriter, err error) {
	if errors.Is(err, llm.ErrNotConfigured) {
		writeError(w, http.StatusInternalServerError, "API key not configured", "")
		return
	}
	s.log.Error("generation failed", zap.Error(err))
	var up *llm.UpstreamError
	if errors.As(err, &up) {
		writeError(w, http.StatusBadGateway, "AI service error", up.Err.Error())
		return
	}
	writeError(w, http.StatusBadGateway, "AI service error", err.Error())
}
