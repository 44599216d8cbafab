// Package examsession implements the timed-style exam mode: a fixed random
// selection of questions answered with no feedback, scored all at once on
// submit, then reviewable question by question.
package examsession

import (
	"errors"
	"fmt"
	"math"

	practicesession "github.com/ontapquiz/backend/internal/domain/practice_session"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/domain/source"
	"github.com/ontapquiz/backend/internal/id"
)

// Phase is the exam state machine's current state.
type Phase string

const (
	PhaseConfiguring Phase = "configuring"
	PhaseInProgress  Phase = "in_progress"
	PhaseSubmitted   Phase = "submitted"
)

var (
	// ErrNoQuestions rejects configuring an exam against an empty pool,
	// which would otherwise divide by zero when scoring.
	ErrNoQuestions = errors.New("no questions available")

	// ErrWrongPhase rejects an operation invalid in the current phase.
	ErrWrongPhase = errors.New("invalid in current phase")
)

// IncompleteExamError is returned by Submit when positions remain
// unanswered. The exam stays in progress; there is no partial submission.
type IncompleteExamError struct {
	Unanswered int
}

func (e *IncompleteExamError) Error() string {
	return fmt.Sprintf("exam incomplete: %d unanswered", e.Unanswered)
}

// Result is the score summary, derived entirely from the selection and the
// recorded answers.
type Result struct {
	CorrectCount      int     `json:"correct_count"`
	Total             int     `json:"total"`
	PointsPerQuestion float64 `json:"points_per_question"`
	Score             float64 `json:"score"` // out of 10, rounded to 2 decimals
}

// ExamSession is one exam attempt. All state is owned here; nothing is
// shared between sessions, and discarding the session discards the exam.
type ExamSession struct {
	ID        string
	Phase     Phase
	Source    source.Kind
	Selection []questionbank.Question
	Answers   map[int]string // position → chosen option value
	Result    *Result        // non-nil only in PhaseSubmitted
}

// New returns a session in the configuring phase.
func New() *ExamSession {
	return &ExamSession{
		ID:    id.GenerateID(),
		Phase: PhaseConfiguring,
	}
}

// Configure draws the exam's selection from the resolved pool: a uniform
// shuffle truncated to min(requestedCount, pool size), so no question
// repeats within an attempt. An empty pool is rejected with ErrNoQuestions.
// Callers must pass requestedCount > 0; the surrounding UI validates that.
// On success the session moves to PhaseInProgress with no answers recorded.
func (s *ExamSession) Configure(kind source.Kind, pool []questionbank.Question, requestedCount int) error {
	if s.Phase != PhaseConfiguring {
		return fmt.Errorf("configure: %w (phase %s)", ErrWrongPhase, s.Phase)
	}
	if len(pool) == 0 {
		return ErrNoQuestions
	}

	count := requestedCount
	if count > len(pool) {
		count = len(pool)
	}

	s.Source = kind
	s.Selection = practicesession.Shuffle(pool)[:count]
	s.Answers = make(map[int]string)
	s.Result = nil
	s.Phase = PhaseInProgress
	return nil
}

// RecordAnswer records (or replaces) the chosen option value for a
// question position and returns how many positions are now answered,
// for the progress display.
func (s *ExamSession) RecordAnswer(position int, value string) (int, error) {
	if s.Phase != PhaseInProgress {
		return 0, fmt.Errorf("record answer: %w (phase %s)", ErrWrongPhase, s.Phase)
	}
	if position < 0 || position >= len(s.Selection) {
		return 0, fmt.Errorf("record answer: position %d out of range [0,%d)", position, len(s.Selection))
	}
	s.Answers[position] = value
	return len(s.Answers), nil
}

// Submit scores the exam. Every position must be answered first; otherwise
// it fails with an IncompleteExamError carrying the remaining count and the
// session stays in progress.
func (s *ExamSession) Submit() (Result, error) {
	if s.Phase != PhaseInProgress {
		return Result{}, fmt.Errorf("submit: %w (phase %s)", ErrWrongPhase, s.Phase)
	}
	if unanswered := len(s.Selection) - len(s.Answers); unanswered > 0 {
		return Result{}, &IncompleteExamError{Unanswered: unanswered}
	}

	result := s.score()
	s.Result = &result
	s.Phase = PhaseSubmitted
	return result, nil
}

// Back returns a submitted exam to the answer sheet. Answers are kept; the
// result is dropped and recomputed on the next submit.
func (s *ExamSession) Back() error {
	if s.Phase != PhaseSubmitted {
		return fmt.Errorf("back: %w (phase %s)", ErrWrongPhase, s.Phase)
	}
	s.Result = nil
	s.Phase = PhaseInProgress
	return nil
}

// Reset discards the attempt entirely and returns to configuring.
// Valid in any phase.
func (s *ExamSession) Reset() {
	s.Source = ""
	s.Selection = nil
	s.Answers = nil
	s.Result = nil
	s.Phase = PhaseConfiguring
}

// Snapshot returns a copy of the session for rendering. The copy shares no
// mutable state with the live session, so callers may read it after the
// owning registry's lock is released.
func (s *ExamSession) Snapshot() ExamSession {
	out := ExamSession{
		ID:     s.ID,
		Phase:  s.Phase,
		Source: s.Source,
	}
	if s.Selection != nil {
		out.Selection = make([]questionbank.Question, len(s.Selection))
		copy(out.Selection, s.Selection)
	}
	if s.Answers != nil {
		out.Answers = make(map[int]string, len(s.Answers))
		for pos, v := range s.Answers {
			out.Answers[pos] = v
		}
	}
	if s.Result != nil {
		result := *s.Result
		out.Result = &result
	}
	return out
}

// score spreads 10 points evenly across the selection and rounds the total
// to two decimals. Correctness is exact trimmed string equality between the
// recorded value and the question's correct answer.
func (s *ExamSession) score() Result {
	correct := 0
	for pos, q := range s.Selection {
		if q.IsCorrect(s.Answers[pos]) {
			correct++
		}
	}

	perQuestion := 10.0 / float64(len(s.Selection))
	return Result{
		CorrectCount:      correct,
		Total:             len(s.Selection),
		PointsPerQuestion: perQuestion,
		Score:             math.Round(float64(correct)*perQuestion*100) / 100,
	}
}
