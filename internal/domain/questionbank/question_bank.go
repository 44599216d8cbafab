package questionbank

import (
	"github.com/ontapquiz/backend/internal/csvtable"
)

// HeaderMapping binds the semantic fields of a question to the column
// headers of a source file. Columns are identified by header name, never
// by position, so banks may order their columns freely.
type HeaderMapping struct {
	ID            string
	Chapter       string
	Text          string
	Options       [4]string // headers for options A, B, C, D in label order
	CorrectAnswer string
}

var optionLabels = [4]string{"A", "B", "C", "D"}

// DefaultMapping matches the headers the original Vietnamese answer-key
// spreadsheets use.
func DefaultMapping() HeaderMapping {
	return HeaderMapping{
		ID:      "Câu số",
		Chapter: "Chương",
		Text:    "Nội dung Câu hỏi",
		Options: [4]string{
			"Lựa chọn A",
			"Lựa chọn B",
			"Lựa chọn C",
			"Lựa chọn D",
		},
		CorrectAnswer: "Đáp án Đúng",
	}
}

// Bank is the ordered set of questions loaded from one source file.
// It is immutable after construction.
type Bank struct {
	Key       string
	Label     string
	Questions []Question
}

// FromRows projects parsed rows into a Bank. Rows with blank question text
// are dropped; they are stray or malformed lines, not data. Blank option
// columns are omitted from the question. Unknown columns are ignored.
func FromRows(key, label string, rows []csvtable.Row, mapping HeaderMapping) *Bank {
	questions := make([]Question, 0, len(rows))
	for _, row := range rows {
		text := row[mapping.Text]
		if text == "" {
			continue
		}

		q := Question{
			ID:            QuestionID(row[mapping.ID]),
			Chapter:       row[mapping.Chapter],
			Text:          text,
			CorrectAnswer: row[mapping.CorrectAnswer],
		}
		for i, header := range mapping.Options {
			if val := row[header]; val != "" {
				q.Options = append(q.Options, Option{Label: optionLabels[i], Value: val})
			}
		}
		questions = append(questions, q)
	}

	return &Bank{
		Key:       key,
		Label:     label,
		Questions: questions,
	}
}

// Size returns the number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.Questions)
}

// UnmatchedAnswers returns questions whose correct answer equals none of
// their option values. Such rows are a data-quality problem in the source
// file: every submitted choice scores wrong. Callers may log them; scoring
// semantics are never altered.
func (b *Bank) UnmatchedAnswers() []Question {
	var bad []Question
	for _, q := range b.Questions {
		if _, ok := q.CorrectOption(); !ok {
			bad = append(bad, q)
		}
	}
	return bad
}
