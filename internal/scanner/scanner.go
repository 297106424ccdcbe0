// Package scanner implements character-level tokenization of delimited text
// into rows of raw cell strings.
//
// The scanner is a three-state machine (unquoted, single-quoted, double-quoted)
// driven one character at a time over a shape-core stream. Quote characters are
// preserved verbatim in cell values: a quote only toggles the quoting state when
// it is the first character accumulated for the current cell, or when the cell
// already opened with the same quote character. Doubled-quote escaping is not
// interpreted.
package scanner

import (
	"strings"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// state tracks the quoting context of the cell being accumulated.
type state int

const (
	stateUnquoted state = iota
	stateSingleQuoted
	stateDoubleQuoted
)

// Params configures how the scanner splits the stream into cells and rows.
type Params struct {
	// Separator is the field delimiter. Default: ','
	Separator rune

	// Trim removes leading and trailing spaces and tabs from each cell.
	Trim bool

	// QuotedLinebreaks preserves CR and LF characters literally when they
	// occur inside a quoted cell, instead of dropping CR and ending the row
	// at LF.
	QuotedLinebreaks bool
}

// DefaultParams returns the default scanner configuration.
func DefaultParams() Params {
	return Params{
		Separator:        ',',
		Trim:             false,
		QuotedLinebreaks: false,
	}
}

// Result holds the tokenized rows along with the observed line-terminator
// statistics.
type Result struct {
	// Rows is the tokenized grid: one slice of raw cell strings per row.
	Rows [][]string

	// CRCount and LFCount are the number of carriage returns and line feeds
	// seen in the stream, quoted or not.
	CRCount int
	LFCount int
}

// HasCR reports whether the dominant line-terminator convention is CRLF.
// CRLF is assumed when the CR count exceeds half the LF count.
func (r *Result) HasCR() bool {
	return r.CRCount > r.LFCount/2
}

// ScanString tokenizes in-memory text.
func ScanString(text string, p Params) *Result {
	return Scan(shapetokenizer.NewStream(text), p)
}

// Scan consumes the entire stream and returns the tokenized rows.
// The scan is a single forward pass; no backtracking across row boundaries.
func Scan(stream shapetokenizer.Stream, p Params) *Result {
	sep := p.Separator
	if sep == 0 {
		sep = ','
	}

	res := &Result{Rows: make([][]string, 0, 16)}

	var cell strings.Builder
	var row []string
	cur := stateUnquoted
	var first rune // first character of the cell being accumulated

	emitCell := func() {
		c := cell.String()
		if p.Trim {
			c = strings.Trim(c, " \t")
		}
		row = append(row, c)
		cell.Reset()
		first = 0
	}

	appendRune := func(ch rune) {
		if cell.Len() == 0 {
			first = ch
		}
		cell.WriteRune(ch)
	}

	for {
		ch, ok := stream.PeekChar()
		if !ok {
			break
		}
		stream.NextChar()

		switch {
		case ch == '"' || ch == '\'':
			// A quote toggles the quoting state only when it is the first
			// character of the cell, or when the cell already starts with
			// the same quote character. The character itself is always kept
			// in the cell value.
			if cell.Len() == 0 || first == ch {
				if cur == stateUnquoted {
					if ch == '"' {
						cur = stateDoubleQuoted
					} else {
						cur = stateSingleQuoted
					}
				} else {
					cur = stateUnquoted
				}
			}
			appendRune(ch)

		case ch == sep:
			if cur == stateUnquoted {
				emitCell()
			} else {
				appendRune(ch)
			}

		case ch == '\r':
			res.CRCount++
			if p.QuotedLinebreaks && cur != stateUnquoted {
				appendRune(ch)
			}

		case ch == '\n':
			res.LFCount++
			if p.QuotedLinebreaks && cur != stateUnquoted {
				appendRune(ch)
				continue
			}
			if cell.Len() > 0 || len(row) > 0 {
				emitCell()
				res.Rows = append(res.Rows, row)
				row = nil
			}
			// Quoting does not survive a row boundary.
			cur = stateUnquoted

		default:
			appendRune(ch)
		}
	}

	// Last row may lack a trailing line terminator.
	if cell.Len() > 0 || len(row) > 0 {
		emitCell()
		res.Rows = append(res.Rows, row)
	}

	return res
}
