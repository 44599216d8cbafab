package questionbank

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale for the bundled banks, which are
// written in Vietnamese. Byte-order sorting scrambles diacritics ("Chương"
// variants end up far apart), so chapter listings use a proper collator.
var DefaultLocale = language.Vietnamese

// DistinctChapters collects the non-blank chapter values of the bank,
// deduplicated and sorted with a collator for the given locale. Questions
// with a blank chapter stay in the bank but never appear in the listing.
func DistinctChapters(b *Bank, locale language.Tag) []string {
	seen := make(map[string]bool)
	var chapters []string
	for _, q := range b.Questions {
		if q.Chapter == "" || seen[q.Chapter] {
			continue
		}
		seen[q.Chapter] = true
		chapters = append(chapters, q.Chapter)
	}

	collate.New(locale).SortStrings(chapters)
	return chapters
}
