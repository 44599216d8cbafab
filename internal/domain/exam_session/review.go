package examsession

import (
	"fmt"

	"github.com/ontapquiz/backend/internal/domain/questionbank"
)

// OptionVerdict classifies one option for the review display.
type OptionVerdict string

const (
	// VerdictCorrectAnswer marks the option holding the correct value.
	VerdictCorrectAnswer OptionVerdict = "correct_answer"
	// VerdictWrongChosen marks the option the user picked when it was not
	// the correct one.
	VerdictWrongChosen OptionVerdict = "wrong_chosen"
	// VerdictNeutral marks every other option.
	VerdictNeutral OptionVerdict = "neutral"
)

// OptionReview is one option with its classification.
type OptionReview struct {
	Label   string        `json:"label"`
	Value   string        `json:"value"`
	Verdict OptionVerdict `json:"verdict"`
}

// QuestionReview is the read-only breakdown of one exam position.
type QuestionReview struct {
	Position     int                     `json:"position"`
	QuestionID   questionbank.QuestionID `json:"question_id"`
	Text         string                  `json:"text"`
	Options      []OptionReview          `json:"options"`
	Chosen       string                  `json:"chosen"`
	CorrectValue string                  `json:"correct_value"`
	IsCorrect    bool                    `json:"is_correct"`
}

// Review produces the per-question breakdown of a submitted exam. It never
// mutates the session; calling it outside PhaseSubmitted is an error.
func (s *ExamSession) Review() ([]QuestionReview, error) {
	if s.Phase != PhaseSubmitted {
		return nil, fmt.Errorf("review: %w (phase %s)", ErrWrongPhase, s.Phase)
	}

	reviews := make([]QuestionReview, len(s.Selection))
	for pos, q := range s.Selection {
		chosen := s.Answers[pos]
		correct := q.IsCorrect(chosen)

		options := make([]OptionReview, len(q.Options))
		for i, opt := range q.Options {
			verdict := VerdictNeutral
			switch {
			case q.IsCorrect(opt.Value):
				verdict = VerdictCorrectAnswer
			case opt.Value == chosen && !correct:
				verdict = VerdictWrongChosen
			}
			options[i] = OptionReview{Label: opt.Label, Value: opt.Value, Verdict: verdict}
		}

		reviews[pos] = QuestionReview{
			Position:     pos,
			QuestionID:   q.ID,
			Text:         q.Text,
			Options:      options,
			Chosen:       chosen,
			CorrectValue: q.CorrectAnswer,
			IsCorrect:    correct,
		}
	}
	return reviews, nil
}
