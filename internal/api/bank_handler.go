package api

import (
	"net/http"

	"github.com/ontapquiz/backend/internal/csvtable"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
)

// ── Response types ──────────────────────────────────────────────────────────

type ChaptersResponse struct {
	BankKey  string   `json:"bank_key"`
	Chapters []string `json:"chapters"`
}

type QuestionListResponse struct {
	BankKey   string                  `json:"bank_key"`
	Chapter   *string                 `json:"chapter,omitempty"`
	Questions []questionbank.Question `json:"questions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listBanks lists the loaded question banks.
// @Summary      List question banks
// @Description  Returns every loaded bank with its question count, in pool order.
// @Tags         Banks
// @Produce      json
// @Success      200  {array}   store.BankSummary
// @Failure      500  {object}  ErrorResponse
// @Router       /banks [get]
func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.store.ListBanks(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load banks")
		return
	}
	respondJSON(w, http.StatusOK, banks)
}

// listChapters lists a bank's distinct chapters, locale-sorted.
// @Summary      List chapters
// @Description  Distinct non-blank chapter values of one bank, collated for the bank's locale.
// @Tags         Banks
// @Produce      json
// @Param        bankKey  path      string  true  "Bank key"
// @Success      200      {object}  ChaptersResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /banks/{bankKey}/chapters [get]
func (h *Handler) listChapters(w http.ResponseWriter, r *http.Request) {
	bankKey := r.PathValue("bankKey")

	bank, err := h.store.GetBank(r.Context(), bankKey)
	if h.handleDomainError(w, err, "bank") {
		return
	}

	respondJSON(w, http.StatusOK, ChaptersResponse{
		BankKey:  bankKey,
		Chapters: questionbank.DistinctChapters(bank, h.locale),
	})
}

// listQuestions returns a bank's questions, optionally filtered by chapter.
// @Summary      List questions
// @Description  Questions of one bank in load order. The optional chapter query filters by exact chapter match.
// @Tags         Banks
// @Produce      json
// @Param        bankKey  path      string  true   "Bank key"
// @Param        chapter  query     string  false  "Exact chapter filter"
// @Success      200      {object}  QuestionListResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /banks/{bankKey}/questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	bankKey := r.PathValue("bankKey")

	var chapter *string
	if r.URL.Query().Has("chapter") {
		ch := r.URL.Query().Get("chapter")
		chapter = &ch
	}

	questions, err := h.store.QuestionsByChapter(r.Context(), bankKey, chapter)
	if h.handleDomainError(w, err, "bank") {
		return
	}

	respondJSON(w, http.StatusOK, QuestionListResponse{
		BankKey:   bankKey,
		Chapter:   chapter,
		Questions: questions,
	})
}

// getBankStats summarizes one bank.
// @Summary      Bank statistics
// @Description  Question totals, per-chapter counts, and data-quality counters for one bank.
// @Tags         Banks
// @Produce      json
// @Param        bankKey  path      string  true  "Bank key"
// @Success      200      {object}  questionbank.BankStats
// @Failure      404      {object}  ErrorResponse
// @Router       /banks/{bankKey}/stats [get]
func (h *Handler) getBankStats(w http.ResponseWriter, r *http.Request) {
	bankKey := r.PathValue("bankKey")

	bank, err := h.store.GetBank(r.Context(), bankKey)
	if h.handleDomainError(w, err, "bank") {
		return
	}

	respondJSON(w, http.StatusOK, bank.Stats(h.locale))
}

// exportBank streams one bank back out as CSV with the canonical headers.
// @Summary      Export a bank
// @Description  Renders the bank as CSV using the default column mapping, quote-escaping fields as needed.
// @Tags         Banks
// @Produce      text/csv
// @Param        bankKey  path      string  true  "Bank key"
// @Success      200      {string}  string
// @Failure      404      {object}  ErrorResponse
// @Router       /banks/{bankKey}/export [get]
func (h *Handler) exportBank(w http.ResponseWriter, r *http.Request) {
	bankKey := r.PathValue("bankKey")

	bank, err := h.store.GetBank(r.Context(), bankKey)
	if h.handleDomainError(w, err, "bank") {
		return
	}

	mapping := questionbank.DefaultMapping()
	headers := []string{
		mapping.ID, mapping.Chapter, mapping.Text,
		mapping.Options[0], mapping.Options[1], mapping.Options[2], mapping.Options[3],
		mapping.CorrectAnswer,
	}

	rows := make([]csvtable.Row, len(bank.Questions))
	for i, q := range bank.Questions {
		row := csvtable.Row{
			mapping.ID:            string(q.ID),
			mapping.Chapter:       q.Chapter,
			mapping.Text:          q.Text,
			mapping.CorrectAnswer: q.CorrectAnswer,
		}
		for _, opt := range q.Options {
			for l, label := range []string{"A", "B", "C", "D"} {
				if opt.Label == label {
					row[mapping.Options[l]] = opt.Value
				}
			}
		}
		rows[i] = row
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+bankKey+".csv")
	// Leading BOM so spreadsheet tools pick up UTF-8.
	w.Write([]byte("\uFEFF" + csvtable.Render(headers, rows)))
}
