package rapidcsv

import (
	"strings"
)

// renderString renders the grid to delimited text, one physical row per
// line, using the document's line-terminator convention.
func (d *Document) renderString() string {
	sep := d.sep.Separator
	if sep == 0 {
		sep = ','
	}
	term := "\n"
	if d.hasCR {
		term = "\r\n"
	}

	var sb strings.Builder
	for _, row := range d.data {
		for i, cell := range row {
			if i > 0 {
				sb.WriteRune(sep)
			}
			writeCell(&sb, cell, sep)
		}
		sb.WriteString(term)
	}
	return sb.String()
}

// writeCell writes a single cell, quoting only when the cell contains the
// separator. Cells whose trimmed content is already quoted are written
// verbatim rather than quoted a second time.
func writeCell(sb *strings.Builder, cell string, sep rune) {
	if isQuotedCell(cell) || !strings.ContainsRune(cell, sep) {
		sb.WriteString(cell)
		return
	}

	// Prefer the double quote; fall back to the single quote when the
	// content itself holds a double quote.
	quote := byte('"')
	if strings.ContainsRune(cell, '"') {
		quote = '\''
	}
	sb.WriteByte(quote)
	sb.WriteString(cell)
	sb.WriteByte(quote)
}

// isQuotedCell reports whether the trimmed cell content begins and ends
// with the same quote character, of either kind.
func isQuotedCell(cell string) bool {
	t := strings.TrimSpace(cell)
	if len(t) < 2 {
		return false
	}
	first, last := t[0], t[len(t)-1]
	return first == last && (first == '"' || first == '\'')
}
