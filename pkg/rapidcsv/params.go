package rapidcsv

import (
	"math"
	"unicode/utf8"
)

// LabelParams controls which physical row and column hold labels.
type LabelParams struct {
	// ColumnNameIdx is the zero-based physical row index of the column
	// labels. Setting it to -1 disables column lookup by name and exposes
	// every row as document data.
	ColumnNameIdx int

	// RowNameIdx is the zero-based physical column index of the row labels.
	// Setting it to -1 disables row lookup by name and exposes every column
	// as document data.
	RowNameIdx int
}

// DefaultLabelParams returns the default label configuration: the first row
// holds column names, row names are disabled.
func DefaultLabelParams() LabelParams {
	return LabelParams{
		ColumnNameIdx: 0,
		RowNameIdx:    -1,
	}
}

// rowOffset is the translation constant between logical and physical row
// coordinates.
func (p LabelParams) rowOffset() int {
	return p.ColumnNameIdx + 1
}

// columnOffset is the translation constant between logical and physical
// column coordinates.
func (p LabelParams) columnOffset() int {
	return p.RowNameIdx + 1
}

// SeparatorParams controls how document fields and lines are separated.
type SeparatorParams struct {
	// Separator is the field delimiter.
	// It must be a valid rune other than the two quote characters, \r and \n.
	// Default: ','
	Separator rune

	// Trim removes leading and trailing spaces and tabs from each parsed cell.
	// Default: false
	Trim bool

	// HasCR selects CRLF (true) or LF (false) line terminators for writing.
	// Loading a document replaces this with the convention inferred from the
	// stream; use Document.SetHasCR to override before saving.
	// Default: false
	HasCR bool

	// QuotedLinebreaks preserves line breaks occurring inside quoted cells
	// instead of ending the row.
	// Default: false
	QuotedLinebreaks bool
}

// DefaultSeparatorParams returns the default separator configuration.
func DefaultSeparatorParams() SeparatorParams {
	return SeparatorParams{
		Separator:        ',',
		Trim:             false,
		HasCR:            false,
		QuotedLinebreaks: false,
	}
}

// ConverterParams controls how invalid numeric text is handled during typed
// access.
type ConverterParams struct {
	// HasDefaultConverter substitutes the configured default values for text
	// that cannot be parsed as the requested numeric type, instead of
	// returning a conversion error.
	HasDefaultConverter bool

	// DefaultFloat is the substitute for invalid floating-point text.
	DefaultFloat float64

	// DefaultInteger is the substitute for invalid integer text.
	DefaultInteger int64
}

// DefaultConverterParams returns the default converter configuration:
// conversion failures are reported as errors.
func DefaultConverterParams() ConverterParams {
	return ConverterParams{
		HasDefaultConverter: false,
		DefaultFloat:        math.NaN(),
		DefaultInteger:      0,
	}
}

// Options bundles the configuration of a Document.
type Options struct {
	Labels    LabelParams
	Separator SeparatorParams
	Converter ConverterParams
}

// DefaultOptions returns the default document configuration.
func DefaultOptions() Options {
	return Options{
		Labels:    DefaultLabelParams(),
		Separator: DefaultSeparatorParams(),
		Converter: DefaultConverterParams(),
	}
}

// validSeparator reports whether r can serve as a field delimiter.
func validSeparator(r rune) bool {
	return r != 0 && r != '"' && r != '\'' && r != '\r' && r != '\n' &&
		utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks the separator configuration.
func (p SeparatorParams) Validate() error {
	if !validSeparator(p.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid delimiter"}
	}
	return nil
}

// Validate checks the label configuration.
func (p LabelParams) Validate() error {
	if p.ColumnNameIdx < -1 {
		return &OptionsError{Field: "ColumnNameIdx", Message: "must be >= -1"}
	}
	if p.RowNameIdx < -1 {
		return &OptionsError{Field: "RowNameIdx", Message: "must be >= -1"}
	}
	return nil
}

// Validate checks the full document configuration.
func (o Options) Validate() error {
	if err := o.Labels.Validate(); err != nil {
		return err
	}
	return o.Separator.Validate()
}
