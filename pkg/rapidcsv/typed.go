package rapidcsv

// Typed access is exposed as package-level generic functions because Go
// methods cannot carry their own type parameters. Each function resolves the
// requested type against the document's converter registry; a type without a
// registered converter fails with ErrUnsupportedType.

// GetCell returns the cell at the logical coordinate converted to T.
func GetCell[T any](d *Document, colIdx, rowIdx int) (T, error) {
	var zero T
	raw, err := d.GetCell(colIdx, rowIdx)
	if err != nil {
		return zero, err
	}
	return toTyped[T](d.registry, raw)
}

// GetCellByName returns the cell addressed by column and row name converted
// to T.
func GetCellByName[T any](d *Document, colName, rowName string) (T, error) {
	var zero T
	raw, err := d.GetCellByName(colName, rowName)
	if err != nil {
		return zero, err
	}
	return toTyped[T](d.registry, raw)
}

// GetCellByColumnName returns the cell addressed by column name and logical
// row index converted to T.
func GetCellByColumnName[T any](d *Document, colName string, rowIdx int) (T, error) {
	var zero T
	raw, err := d.GetCellByColumnName(colName, rowIdx)
	if err != nil {
		return zero, err
	}
	return toTyped[T](d.registry, raw)
}

// GetCellByRowName returns the cell addressed by logical column index and
// row name converted to T.
func GetCellByRowName[T any](d *Document, colIdx int, rowName string) (T, error) {
	var zero T
	raw, err := d.GetCellByRowName(colIdx, rowName)
	if err != nil {
		return zero, err
	}
	return toTyped[T](d.registry, raw)
}

// SetCell converts val to its text form and writes it at the logical
// coordinate, growing the grid when needed.
func SetCell[T any](d *Document, colIdx, rowIdx int, val T) error {
	str, err := fromTyped(d.registry, val)
	if err != nil {
		return err
	}
	return d.SetCell(colIdx, rowIdx, str)
}

// SetCellByName converts val to its text form and writes it at the cell
// addressed by column and row name.
func SetCellByName[T any](d *Document, colName, rowName string, val T) error {
	str, err := fromTyped(d.registry, val)
	if err != nil {
		return err
	}
	return d.SetCellByName(colName, rowName, str)
}

// SetCellByColumnName converts val to its text form and writes it at the
// cell addressed by column name and logical row index.
func SetCellByColumnName[T any](d *Document, colName string, rowIdx int, val T) error {
	str, err := fromTyped(d.registry, val)
	if err != nil {
		return err
	}
	return d.SetCellByColumnName(colName, rowIdx, str)
}

// SetCellByRowName converts val to its text form and writes it at the cell
// addressed by logical column index and row name.
func SetCellByRowName[T any](d *Document, colIdx int, rowName string, val T) error {
	str, err := fromTyped(d.registry, val)
	if err != nil {
		return err
	}
	return d.SetCellByRowName(colIdx, rowName, str)
}

// GetColumn returns the column at the logical index with every cell
// converted to T.
func GetColumn[T any](d *Document, colIdx int) ([]T, error) {
	raw, err := d.GetColumn(colIdx)
	if err != nil {
		return nil, err
	}
	return convertSlice[T](d.registry, raw)
}

// GetColumnByName returns the named column with every cell converted to T.
func GetColumnByName[T any](d *Document, name string) ([]T, error) {
	raw, err := d.GetColumnByName(name)
	if err != nil {
		return nil, err
	}
	return convertSlice[T](d.registry, raw)
}

// SetColumn converts each value to its text form and writes the column at
// the logical index, growing the grid when needed.
func SetColumn[T any](d *Document, colIdx int, cells []T) error {
	raw, err := renderSlice(d.registry, cells)
	if err != nil {
		return err
	}
	return d.SetColumn(colIdx, raw)
}

// SetColumnByName converts each value to its text form and writes the named
// column.
func SetColumnByName[T any](d *Document, name string, cells []T) error {
	raw, err := renderSlice(d.registry, cells)
	if err != nil {
		return err
	}
	return d.SetColumnByName(name, raw)
}

// GetRow returns the row at the logical index with every cell converted to T.
func GetRow[T any](d *Document, rowIdx int) ([]T, error) {
	raw, err := d.GetRow(rowIdx)
	if err != nil {
		return nil, err
	}
	return convertSlice[T](d.registry, raw)
}

// GetRowByName returns the named row with every cell converted to T.
func GetRowByName[T any](d *Document, name string) ([]T, error) {
	raw, err := d.GetRowByName(name)
	if err != nil {
		return nil, err
	}
	return convertSlice[T](d.registry, raw)
}

// SetRow converts each value to its text form and writes the row at the
// logical index, growing the grid when needed.
func SetRow[T any](d *Document, rowIdx int, cells []T) error {
	raw, err := renderSlice(d.registry, cells)
	if err != nil {
		return err
	}
	return d.SetRow(rowIdx, raw)
}

// SetRowByName converts each value to its text form and writes the named row.
func SetRowByName[T any](d *Document, name string, cells []T) error {
	raw, err := renderSlice(d.registry, cells)
	if err != nil {
		return err
	}
	return d.SetRowByName(name, raw)
}

func convertSlice[T any](r *ConverterRegistry, raw []string) ([]T, error) {
	out := make([]T, len(raw))
	for i, s := range raw {
		v, err := toTyped[T](r, s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func renderSlice[T any](r *ConverterRegistry, cells []T) ([]string, error) {
	out := make([]string, len(cells))
	for i, v := range cells {
		s, err := fromTyped(r, v)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
