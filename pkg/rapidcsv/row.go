package rapidcsv

// GetRowCount returns the number of data rows: the physical row count minus
// the column-label row, floored at zero.
func (d *Document) GetRowCount() int {
	n := len(d.data) - d.labels.rowOffset()
	if n < 0 {
		return 0
	}
	return n
}

// GetRow returns the raw cell texts of the row at the logical index.
func (d *Document) GetRow(rowIdx int) ([]string, error) {
	if rowIdx < 0 {
		return nil, &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	pRow := rowIdx + d.labels.rowOffset()
	if pRow >= len(d.data) {
		return nil, &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	row := d.data[pRow]
	off := d.labels.columnOffset()
	if off >= len(row) {
		return []string{}, nil
	}
	return append([]string(nil), row[off:]...), nil
}

// GetRowByName returns the raw cell texts of the named row.
func (d *Document) GetRowByName(name string) ([]string, error) {
	rowIdx, err := d.GetRowIdx(name)
	if err != nil {
		return nil, err
	}
	return d.GetRow(rowIdx)
}

// SetRow writes raw cell texts into the row at the logical index, growing
// the grid when the row or the cell count exceeds the current bounds.
func (d *Document) SetRow(rowIdx int, cells []string) error {
	if rowIdx < 0 {
		return &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	pRow := rowIdx + d.labels.rowOffset()
	pColMax := d.labels.columnOffset() + len(cells) - 1
	if pColMax < 0 {
		pColMax = 0
	}
	d.grow(pColMax, pRow)

	off := d.labels.columnOffset()
	for i, cell := range cells {
		d.data[pRow][off+i] = cell
	}
	return nil
}

// SetRowByName writes raw cell texts into the named row.
func (d *Document) SetRowByName(name string, cells []string) error {
	rowIdx, err := d.GetRowIdx(name)
	if err != nil {
		return err
	}
	return d.SetRow(rowIdx, cells)
}

// InsertRow inserts a row of raw cell texts at the logical index, shifting
// later rows down. The label index is rebuilt afterwards.
func (d *Document) InsertRow(rowIdx int, cells []string) error {
	if rowIdx < 0 || rowIdx > d.GetRowCount() {
		return &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	off := d.labels.columnOffset()
	oldWidth := d.physicalWidth()
	width := oldWidth
	if off+len(cells) > width {
		width = off + len(cells)
	}

	row := make([]string, width)
	copy(row[off:], cells)

	pRow := rowIdx + d.labels.rowOffset()
	if pRow > len(d.data) {
		pRow = len(d.data)
	}
	d.data = append(d.data, nil)
	copy(d.data[pRow+1:], d.data[pRow:])
	d.data[pRow] = row

	// Keep the grid rectangular if the new row widened it.
	if width > oldWidth {
		d.grow(width-1, 0)
	}

	d.rebuildIndexes()
	return nil
}

// RemoveRow erases the row at the logical index. The label index is rebuilt
// afterwards.
func (d *Document) RemoveRow(rowIdx int) error {
	if rowIdx < 0 || rowIdx >= d.GetRowCount() {
		return &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	pRow := rowIdx + d.labels.rowOffset()
	d.data = append(d.data[:pRow], d.data[pRow+1:]...)

	d.rebuildIndexes()
	return nil
}

// RemoveRowByName erases the named row.
func (d *Document) RemoveRowByName(name string) error {
	rowIdx, err := d.GetRowIdx(name)
	if err != nil {
		return err
	}
	return d.RemoveRow(rowIdx)
}

// GetRowName returns the label of the row at the logical index.
func (d *Document) GetRowName(rowIdx int) (string, error) {
	if d.labels.RowNameIdx < 0 {
		return "", &NotFoundError{Kind: "row", Name: ""}
	}
	if rowIdx < 0 {
		return "", &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	pRow := rowIdx + d.labels.rowOffset()
	if pRow >= len(d.data) {
		return "", &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}
	row := d.data[pRow]
	if d.labels.RowNameIdx >= len(row) {
		return "", &OutOfRangeError{Kind: "column", Index: d.labels.RowNameIdx, Count: len(row)}
	}
	return row[d.labels.RowNameIdx], nil
}

// GetRowNames returns the row labels in current physical order, read
// directly from the designated label column.
func (d *Document) GetRowNames() []string {
	if d.labels.RowNameIdx < 0 {
		return []string{}
	}

	names := make([]string, 0, d.GetRowCount())
	for pRow := d.labels.rowOffset(); pRow < len(d.data); pRow++ {
		row := d.data[pRow]
		if d.labels.RowNameIdx < len(row) {
			names = append(names, row[d.labels.RowNameIdx])
		}
	}
	return names
}

// SetRowName writes a new label for the row at the logical index, growing
// the grid when needed, and updates the label index. The stale entry for
// the previous label is dropped.
func (d *Document) SetRowName(rowIdx int, name string) error {
	if d.labels.RowNameIdx < 0 {
		return &NotFoundError{Kind: "row", Name: name}
	}
	if rowIdx < 0 {
		return &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	pRow := rowIdx + d.labels.rowOffset()
	d.grow(d.labels.RowNameIdx, pRow)

	old := d.data[pRow][d.labels.RowNameIdx]
	if prev, ok := d.rowNames[old]; ok && prev == pRow {
		delete(d.rowNames, old)
	}
	d.data[pRow][d.labels.RowNameIdx] = name
	d.rowNames[name] = pRow
	return nil
}
