package api

import (
	"net/http"

	practicesession "github.com/ontapquiz/backend/internal/domain/practice_session"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartPracticeRequest struct {
	BankKey string  `json:"bank_key" example:"general"`
	Chapter *string `json:"chapter,omitempty" example:"Chương 1"`
}

type PracticeSessionResponse struct {
	ID        string                  `json:"id"`
	BankKey   string                  `json:"bank_key"`
	Chapter   *string                 `json:"chapter,omitempty"`
	Questions []questionbank.Question `json:"questions"`
}

type PracticeAnswerRequest struct {
	QuestionID questionbank.QuestionID `json:"question_id"`
	Value      string                  `json:"value"`
}

func practiceResponse(s practicesession.PracticeSession) PracticeSessionResponse {
	return PracticeSessionResponse{
		ID:        s.ID,
		BankKey:   s.BankKey,
		Chapter:   s.Chapter,
		Questions: s.Questions,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startPractice opens a practice session over one bank.
// @Summary      Start practice
// @Description  Creates an immediate-feedback practice session, optionally filtered to one chapter.
// @Tags         Practice
// @Accept       json
// @Produce      json
// @Param        body  body      StartPracticeRequest  true  "Bank and optional chapter"
// @Success      201   {object}  PracticeSessionResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /practice [post]
func (h *Handler) startPractice(w http.ResponseWriter, r *http.Request) {
	var req StartPracticeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.BankKey == "" {
		respondError(w, http.StatusBadRequest, "bank_key is required")
		return
	}

	session, err := h.sessions.StartPractice(r.Context(), req.BankKey, req.Chapter)
	if h.handleDomainError(w, err, "bank") {
		return
	}
	respondJSON(w, http.StatusCreated, practiceResponse(session))
}

// getPractice returns the session's current display list.
// @Summary      Get practice session
// @Tags         Practice
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  PracticeSessionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /practice/{sessionID} [get]
func (h *Handler) getPractice(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Practice(r.PathValue("sessionID"))
	if h.handleDomainError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, practiceResponse(session))
}

// shufflePractice re-randomizes the display order.
// @Summary      Shuffle practice questions
// @Description  Replaces the display order with a fresh uniform permutation of the current list.
// @Tags         Practice
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  PracticeSessionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /practice/{sessionID}/shuffle [post]
func (h *Handler) shufflePractice(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.ShufflePractice(r.PathValue("sessionID"))
	if h.handleDomainError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, practiceResponse(session))
}

// resetPractice clears the filter and restores bank order.
// @Summary      Reset practice session
// @Tags         Practice
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  PracticeSessionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /practice/{sessionID}/reset [post]
func (h *Handler) resetPractice(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.ResetPractice(r.PathValue("sessionID"))
	if h.handleDomainError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, practiceResponse(session))
}

// answerPractice checks one choice and reveals the correct value.
// @Summary      Answer a practice question
// @Description  Compares the chosen option value to the correct answer. Informational only; re-answering is always allowed.
// @Tags         Practice
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                 true  "Session ID"
// @Param        body       body      PracticeAnswerRequest  true  "Question and chosen value"
// @Success      200        {object}  practicesession.AnswerResult
// @Failure      404        {object}  ErrorResponse
// @Router       /practice/{sessionID}/answers [post]
func (h *Handler) answerPractice(w http.ResponseWriter, r *http.Request) {
	var req PracticeAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.sessions.AnswerPractice(r.PathValue("sessionID"), req.QuestionID, req.Value)
	if h.handleDomainError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, result)
}
