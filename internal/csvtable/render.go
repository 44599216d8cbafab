package csvtable

import "strings"

// Render writes a header and data rows back out as CSV text, quoting any
// field containing a comma, quote, or line break and doubling embedded
// quotes. Rendering a table then parsing it returns the same fields.
func Render(headers []string, rows []Row) string {
	var b strings.Builder
	writeRecord(&b, headers)
	for _, row := range rows {
		record := make([]string, len(headers))
		for i, h := range headers {
			record[i] = row[h]
		}
		writeRecord(&b, record)
	}
	return b.String()
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(f))
	}
	b.WriteByte('\n')
}

func escape(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
