package practicesession

import (
	"errors"
	"math/rand"

	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/id"
)

// ErrQuestionNotFound is returned when an answer names a question that is
// not part of the session's current list.
var ErrQuestionNotFound = errors.New("question not in session")

// PracticeSession is the immediate-feedback practice mode over one bank:
// the user filters by chapter, optionally shuffles, and gets told right or
// wrong per question as they click. No score is kept.
type PracticeSession struct {
	ID        string
	BankKey   string
	Chapter   *string // nil means no chapter filter
	Questions []questionbank.Question

	bank *questionbank.Bank
}

// New creates a practice session over the bank, in bank order, filtered
// per the config.
func New(bank *questionbank.Bank, config SessionConfig) *PracticeSession {
	return &PracticeSession{
		ID:        id.GenerateID(),
		BankKey:   bank.Key,
		Chapter:   config.Chapter,
		Questions: Filter(bank, config.Chapter),
		bank:      bank,
	}
}

// Filter returns the bank's questions in order, restricted to the given
// chapter. A nil chapter means no filter: a copy of the whole bank.
// Matching is exact; blank-chapter questions only ever appear unfiltered.
func Filter(bank *questionbank.Bank, chapter *string) []questionbank.Question {
	if chapter == nil {
		out := make([]questionbank.Question, len(bank.Questions))
		copy(out, bank.Questions)
		return out
	}
	var out []questionbank.Question
	for _, q := range bank.Questions {
		if q.Chapter == *chapter {
			out = append(out, q)
		}
	}
	return out
}

// Shuffle returns a uniform random permutation of the questions without
// mutating the input. Fisher–Yates, walking from the last index down,
// so every permutation is equally likely.
func Shuffle(questions []questionbank.Question) []questionbank.Question {
	shuffled := make([]questionbank.Question, len(questions))
	copy(shuffled, questions)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Reshuffle replaces the session's display order with a fresh permutation
// of the current list.
func (s *PracticeSession) Reshuffle() {
	s.Questions = Shuffle(s.Questions)
}

// Reset clears the chapter filter and restores bank order.
func (s *PracticeSession) Reset() {
	s.Chapter = nil
	s.Questions = Filter(s.bank, nil)
}

// SetChapter applies a chapter filter (nil clears it) and restores bank
// order within the filtered set.
func (s *PracticeSession) SetChapter(chapter *string) {
	s.Chapter = chapter
	s.Questions = Filter(s.bank, chapter)
}

// Snapshot returns a copy of the session for rendering. The copy shares no
// mutable state with the live session, so callers may read it after the
// owning registry's lock is released.
func (s *PracticeSession) Snapshot() PracticeSession {
	out := PracticeSession{
		ID:      s.ID,
		BankKey: s.BankKey,
	}
	if s.Chapter != nil {
		chapter := *s.Chapter
		out.Chapter = &chapter
	}
	out.Questions = make([]questionbank.Question, len(s.Questions))
	copy(out.Questions, s.Questions)
	return out
}

// AnswerResult tells the view how to reveal one answered question.
type AnswerResult struct {
	IsCorrect    bool   `json:"is_correct"`
	CorrectValue string `json:"correct_value"`
}

// Answer checks a chosen option value against the named question. Purely
// informational: the session keeps no record, and re-answering the same
// question is always allowed.
func (s *PracticeSession) Answer(questionID questionbank.QuestionID, chosen string) (AnswerResult, error) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return AnswerOne(q, chosen), nil
		}
	}
	return AnswerResult{}, ErrQuestionNotFound
}

// AnswerOne compares a chosen value to the question's correct answer by
// exact trimmed string equality.
func AnswerOne(q questionbank.Question, chosen string) AnswerResult {
	return AnswerResult{
		IsCorrect:    q.IsCorrect(chosen),
		CorrectValue: q.CorrectAnswer,
	}
}
