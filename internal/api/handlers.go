package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stepwise-labs/bodmas/internal/eval"
	"github.com/stepwise-labs/bodmas/internal/tutor"
)

// Handlers provides the JSON HTTP handlers for the tutoring API.
type Handlers struct {
	catalog *tutor.Catalog
	logger  *slog.Logger
}

// NewHandlers creates a Handlers instance.
func NewHandlers(catalog *tutor.Catalog, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handlers{catalog: catalog, logger: logger}
}

// Routes mounts the API endpoints on the router.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/api/questions", h.Questions)
	r.Get("/api/stages", h.Stages)
	r.Post("/api/solve", h.Solve)
	r.Post("/api/check-answer", h.CheckAnswer)
	r.Get("/api/learn/{concept}", h.LearnConcept)
}

// Questions returns the sample question catalogue.
func (h *Handlers) Questions(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, questionsResponse{
		Success:   true,
		Questions: h.catalog.Questions(),
	})
}

// Stages returns the BODMAS stage table.
func (h *Handlers) Stages(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, stagesResponse{
		Success: true,
		Stages:  tutor.Stages(),
	})
}

// Solve evaluates an expression and returns its value and step trace.
func (h *Handlers) Solve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Expression == "" {
		h.writeError(w, http.StatusBadRequest, "expression is required")
		return
	}

	result, err := eval.Solve(req.Expression)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid expression: %v", err))
		return
	}

	h.writeJSON(w, http.StatusOK, solveResponse{
		Success:    true,
		Expression: req.Expression,
		Answer:     Number(result),
		Steps:      eval.Explain(req.Expression),
	})
}

// CheckAnswer validates a student answer against the solved expression and
// returns the verdict, the worked steps, and feedback text.
func (h *Handlers) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid answer format, please enter a number")
		return
	}
	if req.Expression == "" || !req.Answer.set {
		h.writeError(w, http.StatusBadRequest, "expression and answer are required")
		return
	}

	result, err := eval.Validate(req.Expression, req.Answer.value)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid expression: %v", err))
		return
	}

	h.writeJSON(w, http.StatusOK, checkResponse{
		Success:       true,
		AttemptID:     uuid.New().String(),
		Expression:    req.Expression,
		StudentAnswer: Number(result.StudentAnswer),
		CorrectAnswer: Number(result.CorrectAnswer),
		IsCorrect:     result.IsCorrect,
		Steps:         eval.Explain(req.Expression),
		Feedback:      tutor.Feedback(result),
	})
}

// LearnConcept returns the learning material for one BODMAS concept.
func (h *Handlers) LearnConcept(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "concept")
	concept, ok := h.catalog.ConceptByKey(key)
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown concept: %s", key))
		return
	}
	h.writeJSON(w, http.StatusOK, conceptResponse{Success: true, Concept: concept})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Success: false, Error: msg})
}
