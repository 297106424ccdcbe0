package rapidcsv_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tschoepping/rapidcsv/pkg/rapidcsv"
)

func TestGetColumn(t *testing.T) {
	doc := labeledDoc(t)

	got, err := doc.GetColumn(0)
	if err != nil {
		t.Fatalf("GetColumn(0) error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("GetColumn(0) = %v, want [1 3]", got)
	}

	typed, err := rapidcsv.GetColumnByName[int](doc, "c2")
	if err != nil {
		t.Fatalf("GetColumnByName[int](c2) error = %v", err)
	}
	if !reflect.DeepEqual(typed, []int{2, 4}) {
		t.Errorf("GetColumnByName[int](c2) = %v, want [2 4]", typed)
	}

	if _, err := doc.GetColumn(9); !errors.Is(err, rapidcsv.ErrOutOfRange) {
		t.Errorf("GetColumn(9) error = %v, want ErrOutOfRange", err)
	}
	if _, err := doc.GetColumnByName("nope"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("GetColumnByName(nope) error = %v, want ErrNotFound", err)
	}
}

func TestSetColumnGrowsGrid(t *testing.T) {
	doc := mustLoad(t, "a,b\nc,d\n", noLabels())

	if err := rapidcsv.SetColumn(doc, 5, []int{1, 2, 3}); err != nil {
		t.Fatalf("SetColumn(5) error = %v", err)
	}

	if got := doc.GetColumnCount(); got != 6 {
		t.Errorf("GetColumnCount() = %d, want 6", got)
	}
	if got := doc.GetRowCount(); got != 3 {
		t.Errorf("GetRowCount() = %d, want 3", got)
	}

	col, err := rapidcsv.GetColumn[int](doc, 5)
	if err != nil {
		t.Fatalf("GetColumn[int](5) error = %v", err)
	}
	if !reflect.DeepEqual(col, []int{1, 2, 3}) {
		t.Errorf("GetColumn[int](5) = %v, want [1 2 3]", col)
	}

	// Columns between the old and new bounds are filled with empty cells.
	got, err := doc.GetCell(4, 1)
	if err != nil {
		t.Fatalf("GetCell(4, 1) error = %v", err)
	}
	if got != "" {
		t.Errorf("GetCell(4, 1) = %q, want empty", got)
	}
}

func TestInsertColumn(t *testing.T) {
	doc := mustLoad(t, "a,b,c\n1,2,3\n", rapidcsv.DefaultOptions())

	if err := doc.InsertColumn(1, []string{"9"}); err != nil {
		t.Fatalf("InsertColumn(1) error = %v", err)
	}

	row, err := doc.GetRow(0)
	if err != nil {
		t.Fatalf("GetRow(0) error = %v", err)
	}
	if !reflect.DeepEqual(row, []string{"1", "9", "2", "3"}) {
		t.Errorf("GetRow(0) = %v, want [1 9 2 3]", row)
	}

	// Label lookups track the shifted physical positions.
	idx, err := doc.GetColumnIdx("b")
	if err != nil {
		t.Fatalf("GetColumnIdx(b) error = %v", err)
	}
	if idx != 2 {
		t.Errorf("GetColumnIdx(b) = %d, want 2", idx)
	}

	if err := doc.InsertColumn(9, nil); !errors.Is(err, rapidcsv.ErrOutOfRange) {
		t.Errorf("InsertColumn(9) error = %v, want ErrOutOfRange", err)
	}
}

func TestRemoveColumn(t *testing.T) {
	doc := mustLoad(t, "a,b,c\n1,2,3\n", rapidcsv.DefaultOptions())

	if err := doc.RemoveColumn(0); err != nil {
		t.Fatalf("RemoveColumn(0) error = %v", err)
	}

	if got := doc.GetColumnCount(); got != 2 {
		t.Errorf("GetColumnCount() = %d, want 2", got)
	}
	if names := doc.GetColumnNames(); !reflect.DeepEqual(names, []string{"b", "c"}) {
		t.Errorf("GetColumnNames() = %v, want [b c]", names)
	}

	idx, err := doc.GetColumnIdx("b")
	if err != nil {
		t.Fatalf("GetColumnIdx(b) error = %v", err)
	}
	if idx != 0 {
		t.Errorf("GetColumnIdx(b) = %d, want 0", idx)
	}
	if _, err := doc.GetColumnIdx("a"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("GetColumnIdx(a) error = %v, want ErrNotFound", err)
	}

	if err := doc.RemoveColumnByName("c"); err != nil {
		t.Fatalf("RemoveColumnByName(c) error = %v", err)
	}
	if got := doc.GetColumnCount(); got != 1 {
		t.Errorf("GetColumnCount() = %d, want 1", got)
	}
}

func TestSetColumnName(t *testing.T) {
	doc := mustLoad(t, "a,b\n1,2\n", rapidcsv.DefaultOptions())

	if err := doc.SetColumnName(0, "renamed"); err != nil {
		t.Fatalf("SetColumnName() error = %v", err)
	}

	idx, err := doc.GetColumnIdx("renamed")
	if err != nil {
		t.Fatalf("GetColumnIdx(renamed) error = %v", err)
	}
	if idx != 0 {
		t.Errorf("GetColumnIdx(renamed) = %d, want 0", idx)
	}

	// The old label no longer resolves.
	if _, err := doc.GetColumnIdx("a"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("GetColumnIdx(a) error = %v, want ErrNotFound", err)
	}

	name, err := doc.GetColumnName(0)
	if err != nil {
		t.Fatalf("GetColumnName(0) error = %v", err)
	}
	if name != "renamed" {
		t.Errorf("GetColumnName(0) = %q, want %q", name, "renamed")
	}
}

func TestSetColumnNameGrows(t *testing.T) {
	doc := rapidcsv.NewDocument(rapidcsv.DefaultOptions())

	if err := doc.SetColumnName(0, "first"); err != nil {
		t.Fatalf("SetColumnName(0) error = %v", err)
	}
	if err := doc.SetColumnName(1, "second"); err != nil {
		t.Fatalf("SetColumnName(1) error = %v", err)
	}

	if names := doc.GetColumnNames(); !reflect.DeepEqual(names, []string{"first", "second"}) {
		t.Errorf("GetColumnNames() = %v, want [first second]", names)
	}
}

func TestColumnNamesDisabled(t *testing.T) {
	doc := mustLoad(t, "a,b\n", noLabels())

	if names := doc.GetColumnNames(); len(names) != 0 {
		t.Errorf("GetColumnNames() = %v, want empty", names)
	}
	if _, err := doc.GetColumnName(0); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("GetColumnName(0) error = %v, want ErrNotFound", err)
	}
	if err := doc.SetColumnName(0, "x"); !errors.Is(err, rapidcsv.ErrNotFound) {
		t.Errorf("SetColumnName(0) error = %v, want ErrNotFound", err)
	}
}
