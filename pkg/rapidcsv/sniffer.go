package rapidcsv

import (
	"strings"
	"unicode"
)

// Sniffer detects the separator of a delimited-text sample and guesses
// whether its first row holds column labels. For best results provide at
// least two or three lines of data.
type Sniffer struct {
	sample      string
	separator   rune
	hasLabelRow bool
	analyzed    bool
}

// NewSniffer creates a Sniffer over a sample of delimited text.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{sample: sample}
}

// analyze performs dialect detection on the sample.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.separator = s.detectSeparator()
	s.hasLabelRow = s.detectLabelRow()
	s.analyzed = true
}

// DetectSeparator returns the detected field separator.
// Candidates checked: comma, tab, semicolon, pipe.
func (s *Sniffer) DetectSeparator() rune {
	s.analyze()
	return s.separator
}

// HasLabelRow reports whether the first row appears to hold column labels.
func (s *Sniffer) HasLabelRow() bool {
	s.analyze()
	return s.hasLabelRow
}

// SuggestOptions returns document options matching the detected dialect:
// the detected separator, and a column-label row only when one was
// detected.
func (s *Sniffer) SuggestOptions() Options {
	s.analyze()
	opts := DefaultOptions()
	opts.Separator.Separator = s.separator
	if !s.hasLabelRow {
		opts.Labels.ColumnNameIdx = -1
	}
	return opts
}

func (s *Sniffer) detectSeparator() rune {
	if s.sample == "" {
		return ','
	}

	candidates := []rune{',', '\t', ';', '|'}
	scores := make(map[rune]int)
	lines := sampleLines(s.sample)

	for _, sep := range candidates {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			counts = append(counts, countSeparators(line, sep))
		}
		if len(counts) == 0 || counts[0] == 0 {
			continue
		}

		consistent := true
		for i := 1; i < len(counts); i++ {
			if counts[i] != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			scores[sep] = counts[0] * 10
		} else {
			scores[sep] = counts[0]
		}
	}

	best := ','
	bestScore := 0
	for sep, score := range scores {
		if score > bestScore {
			best = sep
			bestScore = score
		}
	}
	return best
}

// countSeparators counts separator occurrences outside quoted cells,
// applying the same quote-toggle rule as the scanner.
func countSeparators(line string, sep rune) int {
	count := 0
	quoted := false
	var opener rune
	cellStart := true
	var first rune

	for _, ch := range line {
		switch {
		case ch == '"' || ch == '\'':
			if cellStart || first == ch {
				if quoted && ch == opener {
					quoted = false
				} else if !quoted {
					quoted = true
					opener = ch
				}
			}
			if cellStart {
				first = ch
				cellStart = false
			}
		case ch == sep && !quoted:
			count++
			cellStart = true
			first = 0
		default:
			if cellStart {
				first = ch
				cellStart = false
			}
		}
	}
	return count
}

func (s *Sniffer) detectLabelRow() bool {
	lines := sampleLines(s.sample)
	if len(lines) < 2 {
		return false
	}

	sep := s.detectSeparator()
	fields := splitSample(lines[0], sep)
	return labelScore(fields) > dataScore(fields)
}

func sampleLines(sample string) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitSample splits a sample line on the separator, quote-aware.
func splitSample(line string, sep rune) []string {
	var fields []string
	var cur strings.Builder
	quoted := false

	for _, ch := range line {
		switch {
		case ch == '"' || ch == '\'':
			quoted = !quoted
			cur.WriteRune(ch)
		case ch == sep && !quoted:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// labelScore counts fields that look like label names.
func labelScore(fields []string) int {
	score := 0
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || looksNumeric(f) {
			continue
		}
		if isIdentifierLike(f) {
			score++
		}
	}
	return score
}

// dataScore counts fields that look like data values.
func dataScore(fields []string) int {
	score := 0
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if looksNumeric(f) {
			score++
		}
	}
	return score
}

// isIdentifierLike reports whether s resembles an identifier or title, the
// usual shape of a label name.
func isIdentifierLike(s string) bool {
	for i, ch := range s {
		switch {
		case unicode.IsLetter(ch) || ch == '_':
		case (unicode.IsDigit(ch) || ch == ' ') && i > 0:
		default:
			return false
		}
	}
	return s != ""
}

// looksNumeric reports whether s parses as a plain decimal number.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	hasDot := false
	hasDigit := false
	for _, ch := range s {
		switch {
		case ch == '.':
			if hasDot {
				return false
			}
			hasDot = true
		case unicode.IsDigit(ch):
			hasDigit = true
		default:
			return false
		}
	}
	return hasDigit
}
