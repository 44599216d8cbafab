package practicesession_test

import (
	"strconv"
	"testing"

	practicesession "github.com/ontapquiz/backend/internal/domain/practice_session"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
)

func createBank(n int) *questionbank.Bank {
	questions := make([]questionbank.Question, n)
	for i := 0; i < n; i++ {
		chapter := "Chương 1"
		if i%2 == 1 {
			chapter = "Chương 2"
		}
		questions[i] = questionbank.Question{
			ID:      questionbank.QuestionID(strconv.Itoa(i + 1)),
			Chapter: chapter,
			Text:    "Question " + strconv.Itoa(i+1),
			Options: []questionbank.Option{
				{Label: "A", Value: "right " + strconv.Itoa(i+1)},
				{Label: "B", Value: "wrong " + strconv.Itoa(i+1)},
			},
			CorrectAnswer: "right " + strconv.Itoa(i+1),
		}
	}
	return &questionbank.Bank{Key: "general", Label: "General", Questions: questions}
}

func TestFilter_NilChapterCopiesWholeBank(t *testing.T) {
	bank := createBank(10)

	filtered := practicesession.Filter(bank, nil)

	if len(filtered) != 10 {
		t.Fatalf("expected all 10 questions, got %d", len(filtered))
	}
	// Must be a copy: mutating the result leaves the bank alone.
	filtered[0].Text = "mutated"
	if bank.Questions[0].Text == "mutated" {
		t.Error("Filter must not alias the bank's slice")
	}
}

func TestFilter_ExactChapterMatch(t *testing.T) {
	bank := createBank(10)
	chapter := "Chương 2"

	filtered := practicesession.Filter(bank, &chapter)

	if len(filtered) != 5 {
		t.Fatalf("expected 5 questions in chapter 2, got %d", len(filtered))
	}
	for _, q := range filtered {
		if q.Chapter != chapter {
			t.Errorf("question %s has chapter %q", q.ID, q.Chapter)
		}
	}
}

func TestShuffle_IsAPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 20} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			bank := createBank(n)
			shuffled := practicesession.Shuffle(bank.Questions)

			if len(shuffled) != n {
				t.Fatalf("expected %d questions, got %d", n, len(shuffled))
			}
			seen := make(map[questionbank.QuestionID]int)
			for _, q := range shuffled {
				seen[q.ID]++
			}
			for _, q := range bank.Questions {
				if seen[q.ID] != 1 {
					t.Errorf("question %s appears %d times", q.ID, seen[q.ID])
				}
			}
		})
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	bank := createBank(20)
	before := make([]questionbank.QuestionID, len(bank.Questions))
	for i, q := range bank.Questions {
		before[i] = q.ID
	}

	practicesession.Shuffle(bank.Questions)

	for i, q := range bank.Questions {
		if q.ID != before[i] {
			t.Fatal("Shuffle mutated its input")
		}
	}
}

func TestShuffle_RandomizesOrder(t *testing.T) {
	bank := createBank(20)

	// Statistically certain to differ at least once across attempts.
	first := practicesession.Shuffle(bank.Questions)
	for i := 0; i < 10; i++ {
		if !sameOrder(first, practicesession.Shuffle(bank.Questions)) {
			return
		}
	}
	t.Error("expected shuffles to produce different orders")
}

func TestNew_AppliesChapterFilter(t *testing.T) {
	bank := createBank(10)
	chapter := "Chương 1"

	session := practicesession.New(bank, practicesession.SessionConfig{Chapter: &chapter})

	if len(session.Questions) != 5 {
		t.Errorf("expected 5 filtered questions, got %d", len(session.Questions))
	}
	if session.Chapter == nil || *session.Chapter != chapter {
		t.Error("session should record its filter")
	}
}

func TestReset_ClearsFilterAndRestoresOrder(t *testing.T) {
	bank := createBank(10)
	chapter := "Chương 1"
	session := practicesession.New(bank, practicesession.SessionConfig{Chapter: &chapter})

	session.Reshuffle()
	session.Reset()

	if session.Chapter != nil {
		t.Error("expected filter cleared after reset")
	}
	if !sameOrder(session.Questions, bank.Questions) {
		t.Error("expected bank order restored after reset")
	}
}

func TestAnswer_ReportsCorrectness(t *testing.T) {
	bank := createBank(3)
	session := practicesession.New(bank, practicesession.DefaultConfig())
	q := session.Questions[0]

	result, err := session.Answer(q.ID, q.CorrectAnswer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected correct answer to be reported correct")
	}

	result, err = session.Answer(q.ID, "wrong value")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsCorrect {
		t.Error("expected wrong answer to be reported wrong")
	}
	if result.CorrectValue != q.CorrectAnswer {
		t.Errorf("expected correct value %q revealed, got %q", q.CorrectAnswer, result.CorrectValue)
	}
}

func TestAnswer_UnknownQuestion(t *testing.T) {
	bank := createBank(3)
	session := practicesession.New(bank, practicesession.DefaultConfig())

	if _, err := session.Answer("999", "anything"); err != practicesession.ErrQuestionNotFound {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestSnapshot_SharesNoState(t *testing.T) {
	bank := createBank(4)
	session := practicesession.New(bank, practicesession.DefaultConfig())

	snap := session.Snapshot()

	// Later mutations of the live session must not show in the snapshot.
	chapter := "Chương 1"
	session.SetChapter(&chapter)
	if snap.Chapter != nil {
		t.Error("snapshot picked up a later chapter filter")
	}
	if len(snap.Questions) != 4 {
		t.Errorf("snapshot shrank to %d questions", len(snap.Questions))
	}

	snap.Questions[0].Text = "mutated"
	if bank.Questions[0].Text == "mutated" {
		t.Error("snapshot questions alias the bank")
	}
}

// Helper to check if two question slices have the same order
func sameOrder(a, b []questionbank.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
