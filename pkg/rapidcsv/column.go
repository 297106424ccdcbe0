package rapidcsv

// GetColumnCount returns the number of data columns: the physical width
// minus the row-label column, floored at zero.
func (d *Document) GetColumnCount() int {
	n := d.physicalWidth() - d.labels.columnOffset()
	if n < 0 {
		return 0
	}
	return n
}

// GetColumn returns the raw cell texts of the column at the logical index.
func (d *Document) GetColumn(colIdx int) ([]string, error) {
	if colIdx < 0 {
		return nil, &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}

	pCol := colIdx + d.labels.columnOffset()
	column := make([]string, 0, d.GetRowCount())
	for pRow := d.labels.rowOffset(); pRow < len(d.data); pRow++ {
		row := d.data[pRow]
		if pCol >= len(row) {
			return nil, &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
		}
		column = append(column, row[pCol])
	}
	return column, nil
}

// GetColumnByName returns the raw cell texts of the named column.
func (d *Document) GetColumnByName(name string) ([]string, error) {
	colIdx, err := d.GetColumnIdx(name)
	if err != nil {
		return nil, err
	}
	return d.GetColumn(colIdx)
}

// SetColumn writes raw cell texts into the column at the logical index,
// growing the grid when the column or the cell count exceeds the current
// bounds.
func (d *Document) SetColumn(colIdx int, cells []string) error {
	if colIdx < 0 {
		return &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}

	pCol := colIdx + d.labels.columnOffset()
	pRowMax := d.labels.rowOffset() + len(cells) - 1
	if pRowMax < 0 {
		pRowMax = 0
	}
	d.grow(pCol, pRowMax)

	for i, cell := range cells {
		d.data[d.labels.rowOffset()+i][pCol] = cell
	}
	return nil
}

// SetColumnByName writes raw cell texts into the named column.
func (d *Document) SetColumnByName(name string, cells []string) error {
	colIdx, err := d.GetColumnIdx(name)
	if err != nil {
		return err
	}
	return d.SetColumn(colIdx, cells)
}

// InsertColumn inserts a column of raw cell texts at the logical index,
// shifting later columns right. Existing rows beyond the supplied cells
// receive empty cells. The label index is rebuilt afterwards.
func (d *Document) InsertColumn(colIdx int, cells []string) error {
	if colIdx < 0 || colIdx > d.GetColumnCount() {
		return &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}

	pCol := colIdx + d.labels.columnOffset()
	pRowMax := d.labels.rowOffset() + len(cells) - 1
	if pRowMax >= 0 && pRowMax >= len(d.data) {
		d.grow(d.physicalWidth()-1, pRowMax)
	}

	for i, row := range d.data {
		// Pad short rows so the insertion point exists.
		for len(row) < pCol {
			row = append(row, "")
		}
		val := ""
		if ci := i - d.labels.rowOffset(); ci >= 0 && ci < len(cells) {
			val = cells[ci]
		}
		row = append(row, "")
		copy(row[pCol+1:], row[pCol:])
		row[pCol] = val
		d.data[i] = row
	}

	d.rebuildIndexes()
	return nil
}

// RemoveColumn erases the column at the logical index from every row.
// The label index is rebuilt afterwards.
func (d *Document) RemoveColumn(colIdx int) error {
	if colIdx < 0 || colIdx >= d.GetColumnCount() {
		return &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}

	pCol := colIdx + d.labels.columnOffset()
	for i, row := range d.data {
		if pCol < len(row) {
			d.data[i] = append(row[:pCol], row[pCol+1:]...)
		}
	}

	d.rebuildIndexes()
	return nil
}

// RemoveColumnByName erases the named column from every row.
func (d *Document) RemoveColumnByName(name string) error {
	colIdx, err := d.GetColumnIdx(name)
	if err != nil {
		return err
	}
	return d.RemoveColumn(colIdx)
}

// GetColumnName returns the label of the column at the logical index.
func (d *Document) GetColumnName(colIdx int) (string, error) {
	if d.labels.ColumnNameIdx < 0 {
		return "", &NotFoundError{Kind: "column", Name: ""}
	}
	if colIdx < 0 {
		return "", &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}

	pCol := colIdx + d.labels.columnOffset()
	if d.labels.ColumnNameIdx >= len(d.data) {
		return "", &OutOfRangeError{Kind: "row", Index: d.labels.ColumnNameIdx, Count: len(d.data)}
	}
	row := d.data[d.labels.ColumnNameIdx]
	if pCol >= len(row) {
		return "", &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}
	return row[pCol], nil
}

// GetColumnNames returns the column labels in current physical order, read
// directly from the designated label row.
func (d *Document) GetColumnNames() []string {
	if d.labels.ColumnNameIdx < 0 || d.labels.ColumnNameIdx >= len(d.data) {
		return []string{}
	}
	row := d.data[d.labels.ColumnNameIdx]
	off := d.labels.columnOffset()
	if off >= len(row) {
		return []string{}
	}
	return append([]string(nil), row[off:]...)
}

// SetColumnName writes a new label for the column at the logical index,
// growing the grid when needed, and updates the label index. The stale
// entry for the previous label is dropped.
func (d *Document) SetColumnName(colIdx int, name string) error {
	if d.labels.ColumnNameIdx < 0 {
		return &NotFoundError{Kind: "column", Name: name}
	}
	if colIdx < 0 {
		return &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}

	pCol := colIdx + d.labels.columnOffset()
	d.grow(pCol, d.labels.ColumnNameIdx)

	old := d.data[d.labels.ColumnNameIdx][pCol]
	if prev, ok := d.columnNames[old]; ok && prev == pCol {
		delete(d.columnNames, old)
	}
	d.data[d.labels.ColumnNameIdx][pCol] = name
	d.columnNames[name] = pCol
	return nil
}
