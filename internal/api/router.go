// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every endpoint onto the mux. Method-qualified
// patterns keep routing in the standard library.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Banks
	mux.HandleFunc("GET /banks", h.listBanks)
	mux.HandleFunc("GET /banks/{bankKey}/chapters", h.listChapters)
	mux.HandleFunc("GET /banks/{bankKey}/questions", h.listQuestions)
	mux.HandleFunc("GET /banks/{bankKey}/stats", h.getBankStats)
	mux.HandleFunc("GET /banks/{bankKey}/export", h.exportBank)

	// Practice sessions
	mux.HandleFunc("POST /practice", h.startPractice)
	mux.HandleFunc("GET /practice/{sessionID}", h.getPractice)
	mux.HandleFunc("POST /practice/{sessionID}/shuffle", h.shufflePractice)
	mux.HandleFunc("POST /practice/{sessionID}/reset", h.resetPractice)
	mux.HandleFunc("POST /practice/{sessionID}/answers", h.answerPractice)

	// Exams
	mux.HandleFunc("POST /exams", h.startExam)
	mux.HandleFunc("GET /exams/{examID}", h.getExam)
	mux.HandleFunc("POST /exams/{examID}/answers", h.recordExamAnswer)
	mux.HandleFunc("POST /exams/{examID}/submit", h.submitExam)
	mux.HandleFunc("GET /exams/{examID}/review", h.reviewExam)
	mux.HandleFunc("POST /exams/{examID}/back", h.backFromReview)
	mux.HandleFunc("POST /exams/{examID}/reset", h.resetExam)
}
