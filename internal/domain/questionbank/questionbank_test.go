package questionbank_test

import (
	"encoding/json"
	"testing"

	"golang.org/x/text/language"

	"github.com/ontapquiz/backend/internal/csvtable"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
)

func row(id, chapter, text, a, b, c, d, answer string) csvtable.Row {
	m := questionbank.DefaultMapping()
	return csvtable.Row{
		m.ID:            id,
		m.Chapter:       chapter,
		m.Text:          text,
		m.Options[0]:    a,
		m.Options[1]:    b,
		m.Options[2]:    c,
		m.Options[3]:    d,
		m.CorrectAnswer: answer,
	}
}

func TestFromRows_BuildsQuestions(t *testing.T) {
	rows := []csvtable.Row{
		row("1", "Chương 1", "Q1?", "a1", "b1", "c1", "d1", "b1"),
		row("2", "Chương 2", "Q2?", "a2", "b2", "", "", "a2"),
	}

	bank := questionbank.FromRows("general", "General", rows, questionbank.DefaultMapping())

	if bank.Size() != 2 {
		t.Fatalf("expected 2 questions, got %d", bank.Size())
	}

	q := bank.Questions[0]
	if q.ID != "1" || q.Chapter != "Chương 1" || q.Text != "Q1?" {
		t.Errorf("unexpected question: %+v", q)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.Options[1].Label != "B" || q.Options[1].Value != "b1" {
		t.Errorf("unexpected option B: %+v", q.Options[1])
	}
}

func TestFromRows_DropsBlankQuestionText(t *testing.T) {
	rows := []csvtable.Row{
		row("1", "Chương 1", "", "a", "b", "", "", "a"),
		row("2", "Chương 1", "Q2?", "a", "b", "", "", "a"),
	}

	bank := questionbank.FromRows("general", "General", rows, questionbank.DefaultMapping())

	if bank.Size() != 1 {
		t.Fatalf("expected blank-text row dropped, got %d questions", bank.Size())
	}
	if bank.Questions[0].ID != "2" {
		t.Errorf("wrong question kept: %+v", bank.Questions[0])
	}
}

func TestFromRows_OmitsEmptyOptions(t *testing.T) {
	rows := []csvtable.Row{
		row("1", "", "Q?", "yes", "", "no", "", "no"),
	}

	bank := questionbank.FromRows("general", "General", rows, questionbank.DefaultMapping())

	opts := bank.Questions[0].Options
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Label != "A" || opts[1].Label != "C" {
		t.Errorf("expected labels A and C preserved, got %+v", opts)
	}
}

func TestQuestionID_JSONPreservesType(t *testing.T) {
	numeric, err := json.Marshal(questionbank.QuestionID("42"))
	if err != nil {
		t.Fatal(err)
	}
	if string(numeric) != "42" {
		t.Errorf("numeric id should marshal as a number, got %s", numeric)
	}

	text, err := json.Marshal(questionbank.QuestionID("B-07"))
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != `"B-07"` {
		t.Errorf("non-numeric id should marshal as a string, got %s", text)
	}
}

func TestIsCorrect_ExactTrimmedMatch(t *testing.T) {
	q := questionbank.Question{CorrectAnswer: "chuỗi rỗng"}

	if !q.IsCorrect("chuỗi rỗng") {
		t.Error("exact match should be correct")
	}
	if !q.IsCorrect("  chuỗi rỗng  ") {
		t.Error("surrounding whitespace should be trimmed before comparing")
	}
	if q.IsCorrect("Chuỗi rỗng") {
		t.Error("matching is case-sensitive")
	}
}

func TestDistinctChapters_LocaleSorted(t *testing.T) {
	rows := []csvtable.Row{
		row("1", "g", "Q1?", "a", "b", "", "", "a"),
		row("2", "đ", "Q2?", "a", "b", "", "", "a"),
		row("3", "e", "Q3?", "a", "b", "", "", "a"),
		row("4", "đ", "Q4?", "a", "b", "", "", "a"),
		row("5", "", "Q5?", "a", "b", "", "", "a"),
	}
	bank := questionbank.FromRows("general", "General", rows, questionbank.DefaultMapping())

	chapters := questionbank.DistinctChapters(bank, language.Vietnamese)

	// Vietnamese alphabet orders đ before e; byte order would put đ last.
	want := []string{"đ", "e", "g"}
	if len(chapters) != len(want) {
		t.Fatalf("expected %v, got %v", want, chapters)
	}
	for i := range want {
		if chapters[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, chapters)
		}
	}
}

func TestDistinctChapters_ExcludesBlankAndDeduplicates(t *testing.T) {
	rows := []csvtable.Row{
		row("1", "B", "Q1?", "a", "b", "", "", "a"),
		row("2", "a", "Q2?", "a", "b", "", "", "a"),
		row("3", "A", "Q3?", "a", "b", "", "", "a"),
		row("4", "a", "Q4?", "a", "b", "", "", "a"),
		row("5", "", "Q5?", "a", "b", "", "", "a"),
	}
	bank := questionbank.FromRows("general", "General", rows, questionbank.DefaultMapping())

	chapters := questionbank.DistinctChapters(bank, language.Vietnamese)

	// "a" and "A" are distinct chapter strings; only exact duplicates merge.
	if len(chapters) != 3 {
		t.Fatalf("expected 3 chapters (exact duplicates merged, blank excluded), got %v", chapters)
	}
	for _, ch := range chapters {
		if ch == "" {
			t.Error("blank chapter must not appear in the listing")
		}
	}
	if chapters[len(chapters)-1] != "B" {
		t.Errorf("expected B to collate after a, got %v", chapters)
	}
}

func TestUnmatchedAnswers(t *testing.T) {
	rows := []csvtable.Row{
		row("1", "", "Q1?", "a", "b", "", "", "b"),
		row("2", "", "Q2?", "a", "b", "", "", "zzz"),
	}
	bank := questionbank.FromRows("general", "General", rows, questionbank.DefaultMapping())

	bad := bank.UnmatchedAnswers()
	if len(bad) != 1 {
		t.Fatalf("expected 1 unmatched answer, got %d", len(bad))
	}
	if bad[0].ID != "2" {
		t.Errorf("wrong question flagged: %+v", bad[0])
	}
}

func TestBankStats(t *testing.T) {
	rows := []csvtable.Row{
		row("1", "e", "Q1?", "a", "b", "", "", "a"),
		row("2", "e", "Q2?", "a", "b", "", "", "a"),
		row("3", "g", "Q3?", "a", "b", "", "", "a"),
		row("4", "", "Q4?", "a", "b", "", "", "zzz"),
	}
	bank := questionbank.FromRows("general", "General", rows, questionbank.DefaultMapping())

	stats := bank.Stats(language.Vietnamese)

	if stats.TotalQuestions != 4 {
		t.Errorf("expected 4 total, got %d", stats.TotalQuestions)
	}
	if stats.Unchaptered != 1 {
		t.Errorf("expected 1 unchaptered, got %d", stats.Unchaptered)
	}
	if stats.UnmatchedAnswers != 1 {
		t.Errorf("expected 1 unmatched answer, got %d", stats.UnmatchedAnswers)
	}
	if len(stats.Chapters) != 2 || stats.Chapters[0].Chapter != "e" || stats.Chapters[0].Count != 2 {
		t.Errorf("unexpected chapter counts: %+v", stats.Chapters)
	}
}
