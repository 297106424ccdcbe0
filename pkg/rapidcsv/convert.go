package rapidcsv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Converter transforms cell text to a typed value and back. Implement it and
// register the implementation for a type to extend typed access to custom
// datatypes.
type Converter interface {
	// ToVal parses cell text into a typed value.
	ToVal(str string) (any, error)

	// ToStr renders a typed value as cell text.
	ToStr(val any) (string, error)
}

// ConverterRegistry maps Go types to their Converter. A registry is created
// per document with the built-in converters pre-registered; later
// registrations for the same type overwrite earlier ones.
type ConverterRegistry struct {
	converters map[reflect.Type]Converter
	params     ConverterParams
}

// NewConverterRegistry creates a registry with the built-in converters for
// string, bool and all integer, unsigned and float widths.
func NewConverterRegistry(params ConverterParams) *ConverterRegistry {
	r := &ConverterRegistry{
		converters: make(map[reflect.Type]Converter),
		params:     params,
	}

	registerFor[string](r, stringConverter{})
	registerFor[bool](r, boolConverter{})
	registerFor[int](r, signedConverter[int]{params})
	registerFor[int8](r, signedConverter[int8]{params})
	registerFor[int16](r, signedConverter[int16]{params})
	registerFor[int32](r, signedConverter[int32]{params})
	registerFor[int64](r, signedConverter[int64]{params})
	registerFor[uint](r, unsignedConverter[uint]{params})
	registerFor[uint8](r, unsignedConverter[uint8]{params})
	registerFor[uint16](r, unsignedConverter[uint16]{params})
	registerFor[uint32](r, unsignedConverter[uint32]{params})
	registerFor[uint64](r, unsignedConverter[uint64]{params})
	registerFor[float32](r, floatConverter[float32]{params})
	registerFor[float64](r, floatConverter[float64]{params})

	return r
}

// clone copies the registry, including caller-registered converters.
func (r *ConverterRegistry) clone() *ConverterRegistry {
	c := &ConverterRegistry{
		converters: make(map[reflect.Type]Converter, len(r.converters)),
		params:     r.params,
	}
	for t, conv := range r.converters {
		c.converters[t] = conv
	}
	return c
}

// Register adds a converter for the given type, replacing any existing one.
func (r *ConverterRegistry) Register(t reflect.Type, conv Converter) {
	r.converters[t] = conv
}

// Lookup retrieves the converter for the given type.
func (r *ConverterRegistry) Lookup(t reflect.Type) (Converter, bool) {
	conv, ok := r.converters[t]
	return conv, ok
}

// RegisterConverter adds a converter for type T, replacing any existing one.
func RegisterConverter[T any](r *ConverterRegistry, conv Converter) {
	registerFor[T](r, conv)
}

func registerFor[T any](r *ConverterRegistry, conv Converter) {
	r.converters[typeOf[T]()] = conv
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// toTyped converts cell text to T through the registry.
func toTyped[T any](r *ConverterRegistry, str string) (T, error) {
	var zero T
	v, err := r.toValue(typeOf[T](), str)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &ConversionError{Value: str, Type: typeOf[T]().String()}
	}
	return t, nil
}

// fromTyped converts a T to cell text through the registry.
func fromTyped[T any](r *ConverterRegistry, val T) (string, error) {
	return r.toString(typeOf[T](), val)
}

// toValue parses cell text into a value of the given type.
func (r *ConverterRegistry) toValue(t reflect.Type, str string) (any, error) {
	conv, ok := r.Lookup(t)
	if !ok {
		return nil, &UnsupportedTypeError{Type: t.String()}
	}
	return conv.ToVal(str)
}

// toString renders a value of the given type as cell text.
func (r *ConverterRegistry) toString(t reflect.Type, val any) (string, error) {
	conv, ok := r.Lookup(t)
	if !ok {
		return "", &UnsupportedTypeError{Type: t.String()}
	}
	return conv.ToStr(val)
}

// stringConverter passes cell text through unchanged.
type stringConverter struct{}

func (stringConverter) ToVal(str string) (any, error) {
	return str, nil
}

func (stringConverter) ToStr(val any) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", &ConversionError{Value: describe(val), Type: "string"}
	}
	return s, nil
}

// boolConverter recognizes true/false and 1/0 (case-insensitive).
type boolConverter struct{}

func (boolConverter) ToVal(str string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return nil, &ConversionError{Value: str, Type: "bool"}
	}
}

func (boolConverter) ToStr(val any) (string, error) {
	b, ok := val.(bool)
	if !ok {
		return "", &ConversionError{Value: describe(val), Type: "bool"}
	}
	return strconv.FormatBool(b), nil
}

// signedConverter handles the signed integer widths. Invalid text maps to
// ConverterParams.DefaultInteger when the default converter is enabled.
type signedConverter[T int | int8 | int16 | int32 | int64] struct {
	params ConverterParams
}

func (c signedConverter[T]) ToVal(str string) (any, error) {
	var zero T
	bits := reflect.TypeOf(zero).Bits()
	n, err := strconv.ParseInt(strings.TrimSpace(str), 10, bits)
	if err != nil {
		if c.params.HasDefaultConverter {
			return T(c.params.DefaultInteger), nil
		}
		return nil, &ConversionError{Value: str, Type: reflect.TypeOf(zero).String(), Err: err}
	}
	return T(n), nil
}

func (c signedConverter[T]) ToStr(val any) (string, error) {
	t, ok := val.(T)
	if !ok {
		var zero T
		return "", &ConversionError{Value: describe(val), Type: reflect.TypeOf(zero).String()}
	}
	return strconv.FormatInt(int64(t), 10), nil
}

// unsignedConverter handles the unsigned integer widths.
type unsignedConverter[T uint | uint8 | uint16 | uint32 | uint64] struct {
	params ConverterParams
}

func (c unsignedConverter[T]) ToVal(str string) (any, error) {
	var zero T
	bits := reflect.TypeOf(zero).Bits()
	n, err := strconv.ParseUint(strings.TrimSpace(str), 10, bits)
	if err != nil {
		if c.params.HasDefaultConverter {
			return T(c.params.DefaultInteger), nil
		}
		return nil, &ConversionError{Value: str, Type: reflect.TypeOf(zero).String(), Err: err}
	}
	return T(n), nil
}

func (c unsignedConverter[T]) ToStr(val any) (string, error) {
	t, ok := val.(T)
	if !ok {
		var zero T
		return "", &ConversionError{Value: describe(val), Type: reflect.TypeOf(zero).String()}
	}
	return strconv.FormatUint(uint64(t), 10), nil
}

// floatConverter handles float32 and float64. Invalid text maps to
// ConverterParams.DefaultFloat when the default converter is enabled.
type floatConverter[T float32 | float64] struct {
	params ConverterParams
}

func (c floatConverter[T]) ToVal(str string) (any, error) {
	var zero T
	bits := reflect.TypeOf(zero).Bits()
	f, err := strconv.ParseFloat(strings.TrimSpace(str), bits)
	if err != nil {
		if c.params.HasDefaultConverter {
			return T(c.params.DefaultFloat), nil
		}
		return nil, &ConversionError{Value: str, Type: reflect.TypeOf(zero).String(), Err: err}
	}
	return T(f), nil
}

func (c floatConverter[T]) ToStr(val any) (string, error) {
	t, ok := val.(T)
	if !ok {
		var zero T
		return "", &ConversionError{Value: describe(val), Type: reflect.TypeOf(zero).String()}
	}
	var zero T
	return strconv.FormatFloat(float64(t), 'g', -1, reflect.TypeOf(zero).Bits()), nil
}

// describe renders an arbitrary value for error messages.
func describe(val any) string {
	return fmt.Sprint(val)
}
