package questionbank

import (
	"encoding/json"
	"strconv"
	"strings"
)

// QuestionID preserves the id exactly as it appeared in the source file.
// Some banks number their questions, some use free-form codes; ids that
// parse as integers are rendered as JSON numbers, everything else as strings.
type QuestionID string

func (id QuestionID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(id)); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(id))
}

func (id *QuestionID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = QuestionID(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = QuestionID(strconv.Itoa(n))
	return nil
}

// Option is one answer choice. Label is "A" through "D"; empty option
// columns in the source are omitted entirely rather than kept as blanks.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is a single multiple-choice item.
type Question struct {
	ID            QuestionID `json:"id"`
	Chapter       string     `json:"chapter"`
	Text          string     `json:"text"`
	Options       []Option   `json:"options"`
	CorrectAnswer string     `json:"correct_answer"`
}

// IsCorrect reports whether the chosen value equals the correct answer,
// by exact string comparison after trimming. Matching is on option value,
// never on label.
func (q Question) IsCorrect(chosen string) bool {
	return strings.TrimSpace(chosen) == strings.TrimSpace(q.CorrectAnswer)
}

// CorrectOption returns the option whose value equals the correct answer.
// Banks occasionally ship rows where the answer matches no option; those
// questions score every choice wrong, which is preserved rather than fixed.
func (q Question) CorrectOption() (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == strings.TrimSpace(q.CorrectAnswer) {
			return opt, true
		}
	}
	return Option{}, false
}
