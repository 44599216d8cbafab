package examsession_test

import (
	"errors"
	"strconv"
	"testing"

	examsession "github.com/ontapquiz/backend/internal/domain/exam_session"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/domain/source"
)

func makePool(prefix string, n int) []questionbank.Question {
	questions := make([]questionbank.Question, n)
	for i := 0; i < n; i++ {
		id := prefix + strconv.Itoa(i+1)
		questions[i] = questionbank.Question{
			ID:   questionbank.QuestionID(id),
			Text: "Question " + id,
			Options: []questionbank.Option{
				{Label: "A", Value: "right " + id},
				{Label: "B", Value: "wrong " + id},
			},
			CorrectAnswer: "right " + id,
		}
	}
	return questions
}

func startExam(t *testing.T, pool []questionbank.Question, count int) *examsession.ExamSession {
	t.Helper()
	session := examsession.New()
	if err := session.Configure(source.KindGeneral, pool, count); err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	return session
}

func TestNew_StartsConfiguring(t *testing.T) {
	session := examsession.New()
	if session.Phase != examsession.PhaseConfiguring {
		t.Errorf("expected configuring phase, got %s", session.Phase)
	}
}

func TestConfigure_CapsAtPoolSize(t *testing.T) {
	// Pools of 10, 5 and 3 combined; 100 requested caps at 18 distinct.
	pool := append(makePool("a", 10), makePool("b", 5)...)
	pool = append(pool, makePool("c", 3)...)

	session := startExam(t, pool, 100)

	if len(session.Selection) != 18 {
		t.Fatalf("expected selection of 18, got %d", len(session.Selection))
	}
	seen := make(map[questionbank.QuestionID]bool)
	for _, q := range session.Selection {
		if seen[q.ID] {
			t.Errorf("question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}
	if session.Phase != examsession.PhaseInProgress {
		t.Errorf("expected in-progress phase, got %s", session.Phase)
	}
}

func TestConfigure_EmptyPoolRejected(t *testing.T) {
	session := examsession.New()

	err := session.Configure(source.KindGeneral, nil, 10)
	if !errors.Is(err, examsession.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
	if session.Phase != examsession.PhaseConfiguring {
		t.Errorf("failed configure must stay configuring, got %s", session.Phase)
	}
}

func TestRecordAnswer_CountsProgress(t *testing.T) {
	session := startExam(t, makePool("q", 5), 5)

	count, err := session.RecordAnswer(0, "whatever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 answered, got %d", count)
	}

	// Upsert: re-answering the same position does not grow the count.
	count, err = session.RecordAnswer(0, "something else")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count to stay 1 after re-answer, got %d", count)
	}
}

func TestRecordAnswer_PositionOutOfRange(t *testing.T) {
	session := startExam(t, makePool("q", 3), 3)

	if _, err := session.RecordAnswer(3, "x"); err == nil {
		t.Error("expected error for out-of-range position")
	}
	if _, err := session.RecordAnswer(-1, "x"); err == nil {
		t.Error("expected error for negative position")
	}
}

func TestSubmit_CompletenessGate(t *testing.T) {
	session := startExam(t, makePool("q", 5), 5)

	for pos := 0; pos < 4; pos++ {
		if _, err := session.RecordAnswer(pos, session.Selection[pos].CorrectAnswer); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	_, err := session.Submit()
	var incomplete *examsession.IncompleteExamError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteExamError, got %v", err)
	}
	if incomplete.Unanswered != 1 {
		t.Errorf("expected 1 unanswered, got %d", incomplete.Unanswered)
	}
	if session.Phase != examsession.PhaseInProgress {
		t.Errorf("failed submit must stay in progress, got %s", session.Phase)
	}

	if _, err := session.RecordAnswer(4, session.Selection[4].CorrectAnswer); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if _, err := session.Submit(); err != nil {
		t.Fatalf("expected submit to succeed, got %v", err)
	}
	if session.Phase != examsession.PhaseSubmitted {
		t.Errorf("expected submitted phase, got %s", session.Phase)
	}
}

func TestSubmit_Scoring(t *testing.T) {
	// 4 questions, 3 correct: 10/4 = 2.5 points each, score 7.5.
	session := startExam(t, makePool("q", 4), 4)

	for pos, q := range session.Selection {
		answer := q.CorrectAnswer
		if pos == 3 {
			answer = "wrong"
		}
		if _, err := session.RecordAnswer(pos, answer); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	result, err := session.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.CorrectCount != 3 {
		t.Errorf("expected 3 correct, got %d", result.CorrectCount)
	}
	if result.PointsPerQuestion != 2.5 {
		t.Errorf("expected 2.5 points per question, got %v", result.PointsPerQuestion)
	}
	if result.Score != 7.5 {
		t.Errorf("expected score 7.5, got %v", result.Score)
	}
}

func TestSubmit_ScoreRounding(t *testing.T) {
	// 3 questions, 1 correct: 10/3 ≈ 3.333..., rounded to 3.33.
	session := startExam(t, makePool("q", 3), 3)

	for pos, q := range session.Selection {
		answer := "wrong"
		if pos == 0 {
			answer = q.CorrectAnswer
		}
		if _, err := session.RecordAnswer(pos, answer); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	result, err := session.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 3.33 {
		t.Errorf("expected score 3.33, got %v", result.Score)
	}
}

func TestReview_Breakdown(t *testing.T) {
	session := startExam(t, makePool("q", 2), 2)

	// Position 0 answered correctly, position 1 wrong.
	if _, err := session.RecordAnswer(0, session.Selection[0].CorrectAnswer); err != nil {
		t.Fatal(err)
	}
	wrongValue := session.Selection[1].Options[1].Value
	if session.Selection[1].IsCorrect(wrongValue) {
		wrongValue = session.Selection[1].Options[0].Value
	}
	if _, err := session.RecordAnswer(1, wrongValue); err != nil {
		t.Fatal(err)
	}
	if _, err := session.Submit(); err != nil {
		t.Fatal(err)
	}

	reviews, err := session.Review()
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}

	if !reviews[0].IsCorrect {
		t.Error("position 0 should be correct")
	}
	if reviews[1].IsCorrect {
		t.Error("position 1 should be wrong")
	}

	for _, opt := range reviews[1].Options {
		switch opt.Value {
		case reviews[1].CorrectValue:
			if opt.Verdict != examsession.VerdictCorrectAnswer {
				t.Errorf("correct option classified %s", opt.Verdict)
			}
		case wrongValue:
			if opt.Verdict != examsession.VerdictWrongChosen {
				t.Errorf("chosen wrong option classified %s", opt.Verdict)
			}
		default:
			if opt.Verdict != examsession.VerdictNeutral {
				t.Errorf("untouched option classified %s", opt.Verdict)
			}
		}
	}
}

func TestReview_InvalidBeforeSubmit(t *testing.T) {
	session := startExam(t, makePool("q", 2), 2)

	if _, err := session.Review(); !errors.Is(err, examsession.ErrWrongPhase) {
		t.Errorf("expected ErrWrongPhase, got %v", err)
	}
}

func TestBack_ReturnsToAnswerSheet(t *testing.T) {
	session := startExam(t, makePool("q", 2), 2)
	for pos, q := range session.Selection {
		session.RecordAnswer(pos, q.CorrectAnswer)
	}
	if _, err := session.Submit(); err != nil {
		t.Fatal(err)
	}

	if err := session.Back(); err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if session.Phase != examsession.PhaseInProgress {
		t.Errorf("expected in progress after back, got %s", session.Phase)
	}
	if len(session.Answers) != 2 {
		t.Error("answers must survive going back")
	}
	if session.Result != nil {
		t.Error("result must be dropped when going back")
	}

	// Resubmitting recomputes the same score.
	result, err := session.Submit()
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if result.Score != 10 {
		t.Errorf("expected score 10, got %v", result.Score)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	session := startExam(t, makePool("q", 5), 5)
	for pos, q := range session.Selection {
		session.RecordAnswer(pos, q.CorrectAnswer)
	}
	if _, err := session.Submit(); err != nil {
		t.Fatal(err)
	}

	session.Reset()

	if session.Phase != examsession.PhaseConfiguring {
		t.Errorf("expected configuring after reset, got %s", session.Phase)
	}
	if session.Selection != nil || session.Answers != nil || session.Result != nil {
		t.Error("reset must clear selection, answers, and result")
	}
	if _, err := session.Review(); !errors.Is(err, examsession.ErrWrongPhase) {
		t.Errorf("review after reset must fail with ErrWrongPhase, got %v", err)
	}

	// A reset session can be configured again.
	if err := session.Configure(source.KindAll, makePool("r", 3), 2); err != nil {
		t.Fatalf("reconfigure after reset failed: %v", err)
	}
	if len(session.Selection) != 2 {
		t.Errorf("expected fresh selection of 2, got %d", len(session.Selection))
	}
}

func TestConfigure_InvalidWhileInProgress(t *testing.T) {
	session := startExam(t, makePool("q", 3), 3)

	err := session.Configure(source.KindGeneral, makePool("r", 3), 3)
	if !errors.Is(err, examsession.ErrWrongPhase) {
		t.Errorf("expected ErrWrongPhase, got %v", err)
	}
}

func TestSnapshot_SharesNoState(t *testing.T) {
	session := startExam(t, makePool("q", 3), 3)
	if _, err := session.RecordAnswer(0, "x"); err != nil {
		t.Fatal(err)
	}

	snap := session.Snapshot()

	// Later mutations of the live session must not show in the snapshot.
	if _, err := session.RecordAnswer(1, "y"); err != nil {
		t.Fatal(err)
	}
	if len(snap.Answers) != 1 {
		t.Errorf("snapshot answers grew to %d", len(snap.Answers))
	}

	snap.Selection[0].Text = "mutated"
	if session.Selection[0].Text == "mutated" {
		t.Error("snapshot selection aliases the live session")
	}

	// A snapshot taken while submitted keeps its result when the live
	// session goes back to the answer sheet.
	for pos, q := range session.Selection {
		session.RecordAnswer(pos, q.CorrectAnswer)
	}
	if _, err := session.Submit(); err != nil {
		t.Fatal(err)
	}
	snap = session.Snapshot()
	if err := session.Back(); err != nil {
		t.Fatal(err)
	}
	if snap.Result == nil {
		t.Error("snapshot result dropped by a later back transition")
	}
}

func TestUnmatchedCorrectAnswer_ScoresWrong(t *testing.T) {
	// The correct answer matches no option; every choice scores wrong.
	pool := []questionbank.Question{{
		ID:   "1",
		Text: "Broken row",
		Options: []questionbank.Option{
			{Label: "A", Value: "first"},
			{Label: "B", Value: "second"},
		},
		CorrectAnswer: "missing value",
	}}
	session := startExam(t, pool, 1)

	session.RecordAnswer(0, "first")
	result, err := session.Submit()
	if err != nil {
		t.Fatal(err)
	}
	if result.CorrectCount != 0 || result.Score != 0 {
		t.Errorf("expected zero score, got %+v", result)
	}
}
