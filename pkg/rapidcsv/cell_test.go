package rapidcsv_test

import (
	"errors"
	"testing"

	"github.com/tschoepping/rapidcsv/pkg/rapidcsv"
)

func labeledDoc(t *testing.T) *rapidcsv.Document {
	t.Helper()
	return mustLoad(t, "-,c1,c2\nr1,1,2\nr2,3,4\n", rapidcsv.Options{
		Labels:    rapidcsv.LabelParams{ColumnNameIdx: 0, RowNameIdx: 0},
		Separator: rapidcsv.DefaultSeparatorParams(),
		Converter: rapidcsv.DefaultConverterParams(),
	})
}

func TestGetCell(t *testing.T) {
	doc := labeledDoc(t)

	tests := []struct {
		name   string
		colIdx int
		rowIdx int
		want   string
	}{
		{"origin", 0, 0, "1"},
		{"last", 1, 1, "4"},
		{"mixed", 1, 0, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.GetCell(tt.colIdx, tt.rowIdx)
			if err != nil {
				t.Fatalf("GetCell(%d, %d) error = %v", tt.colIdx, tt.rowIdx, err)
			}
			if got != tt.want {
				t.Errorf("GetCell(%d, %d) = %q, want %q", tt.colIdx, tt.rowIdx, got, tt.want)
			}
		})
	}
}

func TestGetCellOutOfRange(t *testing.T) {
	doc := labeledDoc(t)

	tests := []struct {
		name   string
		colIdx int
		rowIdx int
	}{
		{"column past end", 5, 0},
		{"row past end", 0, 5},
		{"negative column", -1, 0},
		{"negative row", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := doc.GetCell(tt.colIdx, tt.rowIdx)
			if !errors.Is(err, rapidcsv.ErrOutOfRange) {
				t.Errorf("GetCell(%d, %d) error = %v, want ErrOutOfRange", tt.colIdx, tt.rowIdx, err)
			}
		})
	}
}

func TestCellByNameVariants(t *testing.T) {
	doc := labeledDoc(t)

	got, err := doc.GetCellByName("c1", "r2")
	if err != nil {
		t.Fatalf("GetCellByName() error = %v", err)
	}
	if got != "3" {
		t.Errorf("GetCellByName(c1, r2) = %q, want %q", got, "3")
	}

	got, err = doc.GetCellByColumnName("c2", 0)
	if err != nil {
		t.Fatalf("GetCellByColumnName() error = %v", err)
	}
	if got != "2" {
		t.Errorf("GetCellByColumnName(c2, 0) = %q, want %q", got, "2")
	}

	got, err = doc.GetCellByRowName(0, "r1")
	if err != nil {
		t.Fatalf("GetCellByRowName() error = %v", err)
	}
	if got != "1" {
		t.Errorf("GetCellByRowName(0, r1) = %q, want %q", got, "1")
	}

	if _, err := doc.GetCellByName("nope", "r1"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("GetCellByName(nope, r1) error = %v, want ErrNotFound", err)
	}
	if _, err := doc.GetCellByRowName(0, "nope"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("GetCellByRowName(0, nope) error = %v, want ErrNotFound", err)
	}
}

func TestNameLookupDisabled(t *testing.T) {
	doc := mustLoad(t, "a,b\n1,2\n", noLabels())

	if _, err := doc.GetColumnIdx("a"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("GetColumnIdx() error = %v, want ErrNotFound", err)
	}
	if _, err := doc.GetRowIdx("a"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("GetRowIdx() error = %v, want ErrNotFound", err)
	}
}

func TestSetCellGrowsGrid(t *testing.T) {
	doc := rapidcsv.NewDocument(noLabels())

	if err := doc.SetCell(2, 1, "x"); err != nil {
		t.Fatalf("SetCell(2, 1) error = %v", err)
	}

	if got := doc.GetColumnCount(); got != 3 {
		t.Errorf("GetColumnCount() = %d, want 3", got)
	}
	if got := doc.GetRowCount(); got != 2 {
		t.Errorf("GetRowCount() = %d, want 2", got)
	}

	got, err := doc.GetCell(2, 1)
	if err != nil {
		t.Fatalf("GetCell(2, 1) error = %v", err)
	}
	if got != "x" {
		t.Errorf("GetCell(2, 1) = %q, want %q", got, "x")
	}

	// Cells created by growth are empty.
	got, err = doc.GetCell(0, 0)
	if err != nil {
		t.Fatalf("GetCell(0, 0) error = %v", err)
	}
	if got != "" {
		t.Errorf("GetCell(0, 0) = %q, want empty", got)
	}
}

func TestSetCellByName(t *testing.T) {
	doc := labeledDoc(t)

	if err := doc.SetCellByName("c2", "r1", "42"); err != nil {
		t.Fatalf("SetCellByName() error = %v", err)
	}
	got, err := doc.GetCell(1, 0)
	if err != nil {
		t.Fatalf("GetCell(1, 0) error = %v", err)
	}
	if got != "42" {
		t.Errorf("GetCell(1, 0) = %q, want %q", got, "42")
	}

	if err := doc.SetCellByColumnName("c1", 1, "7"); err != nil {
		t.Fatalf("SetCellByColumnName() error = %v", err)
	}
	if err := doc.SetCellByRowName(1, "r2", "8"); err != nil {
		t.Fatalf("SetCellByRowName() error = %v", err)
	}

	row, err := doc.GetRow(1)
	if err != nil {
		t.Fatalf("GetRow(1) error = %v", err)
	}
	if row[0] != "7" || row[1] != "8" {
		t.Errorf("GetRow(1) = %v, want [7 8]", row)
	}

	if err := doc.SetCellByName("nope", "r1", "x"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("SetCellByName(nope) error = %v, want ErrNotFound", err)
	}
}
