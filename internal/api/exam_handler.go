package api

import (
	"net/http"

	examsession "github.com/ontapquiz/backend/internal/domain/exam_session"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/domain/source"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartExamRequest struct {
	Source string `json:"source" example:"all"`
	Count  int    `json:"count" example:"20"`
}

// ExamQuestion is a selection entry with the correct answer stripped:
// during an exam the client must not see the answer key.
type ExamQuestion struct {
	Position int                     `json:"position"`
	ID       questionbank.QuestionID `json:"id"`
	Text     string                  `json:"text"`
	Options  []questionbank.Option   `json:"options"`
}

type ExamResponse struct {
	ID        string              `json:"id"`
	Phase     examsession.Phase   `json:"phase"`
	Source    source.Kind         `json:"source,omitempty"`
	Questions []ExamQuestion      `json:"questions,omitempty"`
	Answered  int                 `json:"answered"`
	Total     int                 `json:"total"`
	Result    *examsession.Result `json:"result,omitempty"`
}

type ExamAnswerRequest struct {
	Position int    `json:"position"`
	Value    string `json:"value"`
}

type ExamProgressResponse struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

type ExamReviewResponse struct {
	ExamID    string                       `json:"exam_id"`
	Result    examsession.Result           `json:"result"`
	Questions []examsession.QuestionReview `json:"questions"`
}

func examResponse(s examsession.ExamSession) ExamResponse {
	questions := make([]ExamQuestion, len(s.Selection))
	for i, q := range s.Selection {
		questions[i] = ExamQuestion{
			Position: i,
			ID:       q.ID,
			Text:     q.Text,
			Options:  q.Options,
		}
	}
	return ExamResponse{
		ID:        s.ID,
		Phase:     s.Phase,
		Source:    s.Source,
		Questions: questions,
		Answered:  len(s.Answers),
		Total:     len(s.Selection),
		Result:    s.Result,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startExam configures a new exam and moves it in progress.
// @Summary      Start an exam
// @Description  Draws a random selection of min(count, pool size) questions from the chosen source ("general", "secondary", "tertiary", or "all"). Count must be positive.
// @Tags         Exams
// @Accept       json
// @Produce      json
// @Param        body  body      StartExamRequest  true  "Source kind and requested question count"
// @Success      201   {object}  ExamResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse  "no questions available"
// @Router       /exams [post]
func (h *Handler) startExam(w http.ResponseWriter, r *http.Request) {
	var req StartExamRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Count <= 0 {
		respondError(w, http.StatusBadRequest, "count must be positive")
		return
	}

	session, err := h.sessions.StartExam(r.Context(), source.Kind(req.Source), req.Count)
	if h.handleDomainError(w, err, "exam") {
		return
	}
	respondJSON(w, http.StatusCreated, examResponse(session))
}

// getExam returns the exam's phase, questions, and progress.
// @Summary      Get exam state
// @Tags         Exams
// @Produce      json
// @Param        examID  path      string  true  "Exam ID"
// @Success      200     {object}  ExamResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /exams/{examID} [get]
func (h *Handler) getExam(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Exam(r.PathValue("examID"))
	if h.handleDomainError(w, err, "exam") {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(session))
}

// recordExamAnswer upserts one answer and reports progress.
// @Summary      Record an answer
// @Description  Stores the chosen option value for a question position. Only valid while the exam is in progress; re-answering a position overwrites it.
// @Tags         Exams
// @Accept       json
// @Produce      json
// @Param        examID  path      string             true  "Exam ID"
// @Param        body    body      ExamAnswerRequest  true  "Position and chosen value"
// @Success      200     {object}  ExamProgressResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      409     {object}  ErrorResponse  "wrong phase"
// @Router       /exams/{examID}/answers [post]
func (h *Handler) recordExamAnswer(w http.ResponseWriter, r *http.Request) {
	var req ExamAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answered, total, err := h.sessions.RecordAnswer(r.PathValue("examID"), req.Position, req.Value)
	if h.handleDomainError(w, err, "exam") {
		return
	}
	respondJSON(w, http.StatusOK, ExamProgressResponse{
		Answered: answered,
		Total:    total,
	})
}

// submitExam scores the exam once every position is answered.
// @Summary      Submit an exam
// @Description  Fails with 409 and the unanswered count if any position has no answer; no partial submission.
// @Tags         Exams
// @Produce      json
// @Param        examID  path      string  true  "Exam ID"
// @Success      200     {object}  examsession.Result
// @Failure      404     {object}  ErrorResponse
// @Failure      409     {object}  ErrorResponse  "incomplete exam"
// @Router       /exams/{examID}/submit [post]
func (h *Handler) submitExam(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessions.SubmitExam(r.PathValue("examID"))
	if h.handleDomainError(w, err, "exam") {
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// reviewExam returns the per-question breakdown of a submitted exam.
// @Summary      Review an exam
// @Description  Read-only breakdown with per-option verdicts. Only valid once submitted.
// @Tags         Exams
// @Produce      json
// @Param        examID  path      string  true  "Exam ID"
// @Success      200     {object}  ExamReviewResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      409     {object}  ErrorResponse  "wrong phase"
// @Router       /exams/{examID}/review [get]
func (h *Handler) reviewExam(w http.ResponseWriter, r *http.Request) {
	examID := r.PathValue("examID")
	result, reviews, err := h.sessions.ReviewExam(examID)
	if h.handleDomainError(w, err, "exam") {
		return
	}
	respondJSON(w, http.StatusOK, ExamReviewResponse{
		ExamID:    examID,
		Result:    result,
		Questions: reviews,
	})
}

// backFromReview returns a submitted exam to the answer sheet.
// @Summary      Back to answer sheet
// @Description  Moves a submitted exam back in progress with its answers intact; the score is recomputed on the next submit.
// @Tags         Exams
// @Produce      json
// @Param        examID  path      string  true  "Exam ID"
// @Success      200     {object}  ExamResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      409     {object}  ErrorResponse
// @Router       /exams/{examID}/back [post]
func (h *Handler) backFromReview(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.BackFromReview(r.PathValue("examID"))
	if h.handleDomainError(w, err, "exam") {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(session))
}

// resetExam discards the attempt ("new exam").
// @Summary      Reset an exam
// @Description  Valid in any phase; clears selection and answers and returns to configuring.
// @Tags         Exams
// @Produce      json
// @Param        examID  path      string  true  "Exam ID"
// @Success      200     {object}  ExamResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /exams/{examID}/reset [post]
func (h *Handler) resetExam(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.ResetExam(r.PathValue("examID"))
	if h.handleDomainError(w, err, "exam") {
		return
	}
	respondJSON(w, http.StatusOK, examResponse(session))
}
