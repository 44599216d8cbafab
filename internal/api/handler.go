// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	examsession "github.com/ontapquiz/backend/internal/domain/exam_session"
	practicesession "github.com/ontapquiz/backend/internal/domain/practice_session"
	"github.com/ontapquiz/backend/internal/domain/source"
	"github.com/ontapquiz/backend/internal/service"
	"github.com/ontapquiz/backend/internal/store"
	"golang.org/x/text/language"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store    store.Store
	sessions *service.SessionService
	locale   language.Tag
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, sessions *service.SessionService, locale language.Tag, logger *slog.Logger) *Handler {
	return &Handler{
		store:    s,
		sessions: sessions,
		locale:   locale,
		logger:   logger,
	}
}

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error      string `json:"error"`
	Unanswered int    `json:"unanswered,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON decodes the request body into v, writing a 400 on failure.
// Returns false if the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// handleDomainError maps domain and store errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleDomainError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}

	var incomplete *examsession.IncompleteExamError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.As(err, &incomplete):
		respondJSON(w, http.StatusConflict, ErrorResponse{
			Error:      incomplete.Error(),
			Unanswered: incomplete.Unanswered,
		})
	case errors.Is(err, examsession.ErrWrongPhase):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, examsession.ErrNoQuestions):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, source.ErrUnknownKind):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, practicesession.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("internal error", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
