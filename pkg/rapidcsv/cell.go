package rapidcsv

// GetCell returns the raw cell text at the logical coordinate (colIdx, rowIdx).
func (d *Document) GetCell(colIdx, rowIdx int) (string, error) {
	if colIdx < 0 {
		return "", &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}
	if rowIdx < 0 {
		return "", &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	pCol := colIdx + d.labels.columnOffset()
	pRow := rowIdx + d.labels.rowOffset()
	if pRow >= len(d.data) {
		return "", &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}
	row := d.data[pRow]
	if pCol >= len(row) {
		return "", &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}
	return row[pCol], nil
}

// GetCellByName returns the raw cell text addressed by column and row name.
func (d *Document) GetCellByName(colName, rowName string) (string, error) {
	colIdx, err := d.GetColumnIdx(colName)
	if err != nil {
		return "", err
	}
	rowIdx, err := d.GetRowIdx(rowName)
	if err != nil {
		return "", err
	}
	return d.GetCell(colIdx, rowIdx)
}

// GetCellByColumnName returns the raw cell text addressed by column name and
// logical row index.
func (d *Document) GetCellByColumnName(colName string, rowIdx int) (string, error) {
	colIdx, err := d.GetColumnIdx(colName)
	if err != nil {
		return "", err
	}
	return d.GetCell(colIdx, rowIdx)
}

// GetCellByRowName returns the raw cell text addressed by logical column
// index and row name.
func (d *Document) GetCellByRowName(colIdx int, rowName string) (string, error) {
	rowIdx, err := d.GetRowIdx(rowName)
	if err != nil {
		return "", err
	}
	return d.GetCell(colIdx, rowIdx)
}

// SetCell writes raw cell text at the logical coordinate (colIdx, rowIdx),
// growing the grid when the coordinate exceeds the current bounds.
func (d *Document) SetCell(colIdx, rowIdx int, val string) error {
	if colIdx < 0 {
		return &OutOfRangeError{Kind: "column", Index: colIdx, Count: d.GetColumnCount()}
	}
	if rowIdx < 0 {
		return &OutOfRangeError{Kind: "row", Index: rowIdx, Count: d.GetRowCount()}
	}

	pCol := colIdx + d.labels.columnOffset()
	pRow := rowIdx + d.labels.rowOffset()
	d.grow(pCol, pRow)
	d.data[pRow][pCol] = val
	return nil
}

// SetCellByName writes raw cell text addressed by column and row name.
func (d *Document) SetCellByName(colName, rowName, val string) error {
	colIdx, err := d.GetColumnIdx(colName)
	if err != nil {
		return err
	}
	rowIdx, err := d.GetRowIdx(rowName)
	if err != nil {
		return err
	}
	return d.SetCell(colIdx, rowIdx, val)
}

// SetCellByColumnName writes raw cell text addressed by column name and
// logical row index.
func (d *Document) SetCellByColumnName(colName string, rowIdx int, val string) error {
	colIdx, err := d.GetColumnIdx(colName)
	if err != nil {
		return err
	}
	return d.SetCell(colIdx, rowIdx, val)
}

// SetCellByRowName writes raw cell text addressed by logical column index
// and row name.
func (d *Document) SetCellByRowName(colIdx int, rowName, val string) error {
	rowIdx, err := d.GetRowIdx(rowName)
	if err != nil {
		return err
	}
	return d.SetCell(colIdx, rowIdx, val)
}
