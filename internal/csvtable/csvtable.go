// Package csvtable parses comma-separated question files into header-keyed rows.
//
// Question banks come from spreadsheets exported with varying conventions:
// UTF-8 BOMs, CRLF or bare CR line endings, quoted fields containing commas
// and line breaks. The scanner here is deliberately permissive — malformed
// quoting never fails, it just parses whatever is there.
package csvtable

import "strings"

// Row maps a trimmed header name to the trimmed field value of one data line.
type Row map[string]string

// Parse scans raw CSV text and returns one Row per non-blank data line.
// The first non-blank line is the header row; subsequent lines are zipped
// against it (missing trailing fields become "", extra fields are dropped).
// Empty input yields an empty slice, not an error.
func Parse(text string) []Row {
	records := scan(normalize(text))
	if len(records) == 0 {
		return []Row{}
	}

	headers := records[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// normalize strips a leading BOM and folds all line-ending variants to \n.
func normalize(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// scan walks the input character by character, tracking quote state.
// Inside quotes a doubled quote is an escaped literal quote and commas and
// line feeds are ordinary characters. An unterminated quote is not an error:
// the final flush emits whatever accumulated. Records whose fields are all
// blank (stray empty lines) are discarded.
func scan(s string) [][]string {
	var (
		records [][]string
		record  []string
		field   strings.Builder
		quoted  bool
	)

	endField := func() {
		record = append(record, field.String())
		field.Reset()
	}
	endRecord := func() {
		endField()
		if !allBlank(record) {
			records = append(records, record)
		}
		record = nil
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if quoted {
			switch {
			case ch == '"' && i+1 < len(runes) && runes[i+1] == '"':
				field.WriteRune('"')
				i++
			case ch == '"':
				quoted = false
			default:
				field.WriteRune(ch)
			}
			continue
		}
		switch ch {
		case '"':
			quoted = true
		case ',':
			endField()
		case '\n':
			endRecord()
		default:
			field.WriteRune(ch)
		}
	}

	// Flush a trailing record with no final newline.
	if field.Len() > 0 || len(record) > 0 {
		endRecord()
	}
	return records
}

func allBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
