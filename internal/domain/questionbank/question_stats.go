package questionbank

import "golang.org/x/text/language"

// ChapterCount is the number of questions under one chapter heading.
type ChapterCount struct {
	Chapter string `json:"chapter"`
	Count   int    `json:"count"`
}

// BankStats summarizes a loaded bank for the source listing.
type BankStats struct {
	BankKey          string         `json:"bank_key"`
	Label            string         `json:"label"`
	TotalQuestions   int            `json:"total_questions"`
	Chapters         []ChapterCount `json:"chapters"`
	Unchaptered      int            `json:"unchaptered"`       // blank-chapter questions; in "all", excluded from filters
	UnmatchedAnswers int            `json:"unmatched_answers"` // rows whose correct answer equals no option
}

// Stats computes summary statistics for the bank. Chapter order follows
// the locale-collated order used by the chapter selector.
func (b *Bank) Stats(locale language.Tag) BankStats {
	counts := make(map[string]int)
	unchaptered := 0
	for _, q := range b.Questions {
		if q.Chapter == "" {
			unchaptered++
			continue
		}
		counts[q.Chapter]++
	}

	chapters := DistinctChapters(b, locale)
	perChapter := make([]ChapterCount, len(chapters))
	for i, ch := range chapters {
		perChapter[i] = ChapterCount{Chapter: ch, Count: counts[ch]}
	}

	return BankStats{
		BankKey:          b.Key,
		Label:            b.Label,
		TotalQuestions:   len(b.Questions),
		Chapters:         perChapter,
		Unchaptered:      unchaptered,
		UnmatchedAnswers: len(b.UnmatchedAnswers()),
	}
}
