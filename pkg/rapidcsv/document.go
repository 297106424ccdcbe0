// Package rapidcsv treats a delimited-text file as a lightly-typed table.
//
// A Document holds the full grid of raw cell strings in memory, addressed by
// logical row/column coordinates that exclude the label row and column
// configured through LabelParams. Typed access goes through a per-document
// ConverterRegistry; callers extend it by registering a Converter for their
// own types.
//
//	doc, err := rapidcsv.LoadFile("data.csv", rapidcsv.DefaultOptions())
//	if err != nil {
//	    // handle error
//	}
//	ages, err := rapidcsv.GetColumnByName[int](doc, "age")
//
// Quote characters are preserved verbatim in cell values: parsing "x,\"y,z\",w"
// yields the literal cell text "\"y,z\"", quotes included. Serializing the
// document reproduces the original text, so load/save round-trips are
// lossless. Documents are not safe for concurrent mutation.
package rapidcsv

import (
	"io"
	"os"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/tschoepping/rapidcsv/internal/scanner"
	"github.com/tschoepping/rapidcsv/internal/transcode"
)

// Document is a delimited-text table held fully in memory.
type Document struct {
	path     string
	labels   LabelParams
	sep      SeparatorParams
	registry *ConverterRegistry

	// data is the sole storage of cell values, physically indexed.
	data [][]string

	// columnNames and rowNames map labels to physical indexes. They are
	// derived caches over data, rebuilt after any structural mutation.
	columnNames map[string]int
	rowNames    map[string]int

	// hasCR is the line-terminator convention used when writing, inferred
	// on load.
	hasCR bool

	// encoding is the on-disk text encoding detected on load and mirrored
	// on save.
	encoding transcode.Encoding
}

// NewDocument creates an empty document with the given configuration.
func NewDocument(opts Options) *Document {
	return &Document{
		labels:      opts.Labels,
		sep:         opts.Separator,
		registry:    NewConverterRegistry(opts.Converter),
		data:        make([][]string, 0),
		columnNames: make(map[string]int),
		rowNames:    make(map[string]int),
		hasCR:       opts.Separator.HasCR,
		encoding:    transcode.None,
	}
}

// LoadFile reads and parses the document at path.
func LoadFile(path string, opts Options) (*Document, error) {
	d := NewDocument(opts)
	if err := d.Load(path); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadReader reads and parses a document from r.
func LoadReader(r io.Reader, opts Options) (*Document, error) {
	d := NewDocument(opts)
	if err := d.LoadFrom(r); err != nil {
		return nil, err
	}
	return d, nil
}

// Load replaces the document contents with the parsed contents of the file
// at path, which becomes the document's save target.
func (d *Document) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	d.path = path
	return d.LoadFrom(f)
}

// LoadFrom replaces the document contents with the parsed contents of r.
// The stream is read in full before parsing; a leading UTF-16 byte-order
// mark switches on transcoding for both load and save.
func (d *Document) LoadFrom(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	text, enc, err := transcode.Decode(raw)
	if err != nil {
		return err
	}
	d.encoding = enc

	res := scanner.Scan(shapetokenizer.NewStream(text), scanner.Params{
		Separator:        d.sep.Separator,
		Trim:             d.sep.Trim,
		QuotedLinebreaks: d.sep.QuotedLinebreaks,
	})
	d.data = res.Rows
	d.hasCR = res.HasCR()
	d.rebuildIndexes()
	return nil
}

// Save writes the document back to the path it was loaded from.
func (d *Document) Save() error {
	return d.SaveFile(d.path)
}

// SaveFile writes the document to path, which becomes the document's save
// target. Saving to a new path leaves the old file in place.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	d.path = path
	if err := d.SaveWriter(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveWriter renders the document to w, transcoding back to the detected
// on-disk encoding when the source carried a byte-order mark.
func (d *Document) SaveWriter(w io.Writer) error {
	out, err := transcode.Encode(d.renderString(), d.encoding)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Copy returns a deep copy of the document. The copy has its own grid,
// label indexes and converter registry.
func (d *Document) Copy() *Document {
	c := &Document{
		path:        d.path,
		labels:      d.labels,
		sep:         d.sep,
		registry:    d.registry.clone(),
		data:        make([][]string, len(d.data)),
		columnNames: make(map[string]int, len(d.columnNames)),
		rowNames:    make(map[string]int, len(d.rowNames)),
		hasCR:       d.hasCR,
		encoding:    d.encoding,
	}
	for i, row := range d.data {
		c.data[i] = append([]string(nil), row...)
	}
	for k, v := range d.columnNames {
		c.columnNames[k] = v
	}
	for k, v := range d.rowNames {
		c.rowNames[k] = v
	}
	return c
}

// Path returns the document's current save target.
func (d *Document) Path() string {
	return d.path
}

// Converters returns the document's converter registry for custom type
// registration.
func (d *Document) Converters() *ConverterRegistry {
	return d.registry
}

// HasCR reports whether the document writes CRLF line terminators.
func (d *Document) HasCR() bool {
	return d.hasCR
}

// SetHasCR overrides the line-terminator convention used on save.
func (d *Document) SetHasCR(hasCR bool) {
	d.hasCR = hasCR
}

// rebuildIndexes derives the label indexes from the grid. Called after load
// and after every mutation that changes row or column cardinality, since
// such mutations shift the physical positions the indexes point at.
func (d *Document) rebuildIndexes() {
	d.columnNames = make(map[string]int)
	d.rowNames = make(map[string]int)

	if d.labels.ColumnNameIdx >= 0 && d.labels.ColumnNameIdx < len(d.data) {
		for i, name := range d.data[d.labels.ColumnNameIdx] {
			d.columnNames[name] = i
		}
	}

	if d.labels.RowNameIdx >= 0 && len(d.data) > d.labels.ColumnNameIdx+1 {
		for i, row := range d.data {
			if d.labels.RowNameIdx < len(row) {
				d.rowNames[row[d.labels.RowNameIdx]] = i
			}
		}
	}
}

// physicalWidth is the current physical column count of the grid.
func (d *Document) physicalWidth() int {
	if len(d.data) == 0 {
		return 0
	}
	return len(d.data[0])
}

// grow extends the grid so that physical coordinate (pCol, pRow) is
// addressable. Missing rows are appended sized to the current width; when
// the target column exceeds the current width every row is widened with
// empty cells. Growth never truncates existing data.
func (d *Document) grow(pCol, pRow int) {
	width := d.physicalWidth()
	if pCol+1 > width {
		width = pCol + 1
	}

	for len(d.data) <= pRow {
		d.data = append(d.data, make([]string, d.physicalWidth()))
	}

	for i, row := range d.data {
		for len(row) < width {
			row = append(row, "")
		}
		d.data[i] = row
	}
}

// GetColumnIdx resolves a column name to its logical index.
func (d *Document) GetColumnIdx(name string) (int, error) {
	if d.labels.ColumnNameIdx < 0 {
		return 0, &NotFoundError{Kind: "column", Name: name}
	}
	phys, ok := d.columnNames[name]
	if !ok {
		return 0, &NotFoundError{Kind: "column", Name: name}
	}
	idx := phys - d.labels.columnOffset()
	if idx < 0 {
		// The name resolved to the row-label column itself.
		return 0, &NotFoundError{Kind: "column", Name: name}
	}
	return idx, nil
}

// GetRowIdx resolves a row name to its logical index.
func (d *Document) GetRowIdx(name string) (int, error) {
	if d.labels.RowNameIdx < 0 {
		return 0, &NotFoundError{Kind: "row", Name: name}
	}
	phys, ok := d.rowNames[name]
	if !ok {
		return 0, &NotFoundError{Kind: "row", Name: name}
	}
	idx := phys - d.labels.rowOffset()
	if idx < 0 {
		// The name resolved to the column-label row itself.
		return 0, &NotFoundError{Kind: "row", Name: name}
	}
	return idx, nil
}
