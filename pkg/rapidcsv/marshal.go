package rapidcsv

import (
	"fmt"
	"reflect"
	"strings"
)

// fieldSpec describes one struct field participating in document mapping.
type fieldSpec struct {
	name  string
	index int
	typ   reflect.Type
}

// structFields collects the mappable fields of a struct type. The column
// name comes from the "csv" tag when present, otherwise from the field
// name; a tag of "-" excludes the field. Anonymous and unexported fields
// are skipped.
func structFields(t reflect.Type) []fieldSpec {
	specs := make([]fieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup("csv"); ok {
			if tag == "-" {
				continue
			}
			if base, _, _ := strings.Cut(tag, ","); base != "" {
				name = base
			}
		}

		specs = append(specs, fieldSpec{name: name, index: i, typ: f.Type})
	}
	return specs
}

// Unmarshal maps the document's data rows onto a slice of structs.
//
// v must be a non-nil pointer to a slice of structs. Struct fields are
// matched to columns case-insensitively, by "csv" tag name first and field
// name second; fields without a matching column keep their zero value.
// Field values are converted through the document's converter registry, so
// every mapped field type must have a registered converter.
//
//	type Person struct {
//	    Name string `csv:"name"`
//	    Age  int    `csv:"age"`
//	}
//	var people []Person
//	err := rapidcsv.Unmarshal(doc, &people)
//
// The document must have column labels enabled.
func Unmarshal(d *Document, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("rapidcsv: Unmarshal target must be a non-nil pointer to a slice of structs, got %T", v)
	}
	sliceVal := rv.Elem()
	if sliceVal.Kind() != reflect.Slice {
		return fmt.Errorf("rapidcsv: Unmarshal target must point to a slice, got %s", sliceVal.Type())
	}
	elemType := sliceVal.Type().Elem()
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("rapidcsv: Unmarshal target must be a slice of structs, got slice of %s", elemType)
	}

	// Map lowercased column labels to logical indexes.
	columns := make(map[string]int)
	for i, name := range d.GetColumnNames() {
		columns[strings.ToLower(name)] = i
	}

	specs := structFields(elemType)
	type binding struct {
		spec   fieldSpec
		colIdx int
	}
	bindings := make([]binding, 0, len(specs))
	for _, spec := range specs {
		if colIdx, ok := columns[strings.ToLower(spec.name)]; ok {
			bindings = append(bindings, binding{spec: spec, colIdx: colIdx})
		}
	}

	rows := d.GetRowCount()
	out := reflect.MakeSlice(sliceVal.Type(), 0, rows)
	for rowIdx := 0; rowIdx < rows; rowIdx++ {
		elem := reflect.New(elemType).Elem()
		for _, b := range bindings {
			raw, err := d.GetCell(b.colIdx, rowIdx)
			if err != nil {
				return err
			}
			val, err := d.registry.toValue(b.spec.typ, raw)
			if err != nil {
				return fmt.Errorf("rapidcsv: field %s, row %d: %w", b.spec.name, rowIdx, err)
			}
			fv := reflect.ValueOf(val)
			if !fv.Type().AssignableTo(b.spec.typ) {
				if !fv.Type().ConvertibleTo(b.spec.typ) {
					return &ConversionError{Value: raw, Type: b.spec.typ.String()}
				}
				fv = fv.Convert(b.spec.typ)
			}
			elem.Field(b.spec.index).Set(fv)
		}
		out = reflect.Append(out, elem)
	}

	sliceVal.Set(out)
	return nil
}

// Marshal builds a document from a slice of structs. Each struct becomes a
// data row; the column labels come from "csv" tags or field names, in
// declaration order. Field values are rendered through the new document's
// converter registry.
//
// opts must have column labels enabled so the label row can be written.
func Marshal(v any, opts Options) (*Document, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("rapidcsv: Marshal expects a slice of structs, got %T", v)
	}
	elemType := rv.Type().Elem()
	if elemType.Kind() == reflect.Pointer {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("rapidcsv: Marshal expects a slice of structs, got slice of %s", rv.Type().Elem())
	}
	if opts.Labels.ColumnNameIdx < 0 {
		return nil, &OptionsError{Field: "Labels.ColumnNameIdx", Message: "column labels must be enabled for Marshal"}
	}

	d := NewDocument(opts)
	specs := structFields(elemType)
	for colIdx, spec := range specs {
		if err := d.SetColumnName(colIdx, spec.name); err != nil {
			return nil, err
		}
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Pointer {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}

		cells := make([]string, len(specs))
		for j, spec := range specs {
			str, err := d.registry.toString(spec.typ, elem.Field(spec.index).Interface())
			if err != nil {
				return nil, fmt.Errorf("rapidcsv: field %s, row %d: %w", spec.name, i, err)
			}
			cells[j] = str
		}
		if err := d.SetRow(i, cells); err != nil {
			return nil, err
		}
	}

	return d, nil
}
