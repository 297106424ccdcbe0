package rapidcsv

import (
	"errors"
	"fmt"
)

// Sentinel errors for the document access taxonomy. Structured errors
// returned by accessors unwrap to one of these, so callers can classify
// failures with errors.Is.
var (
	// ErrNotFound reports a column or row name lookup miss.
	ErrNotFound = errors.New("rapidcsv: name not found")

	// ErrOutOfRange reports a physical index outside the current grid bounds.
	ErrOutOfRange = errors.New("rapidcsv: index out of range")

	// ErrUnsupportedType reports a typed access for which no converter is
	// registered.
	ErrUnsupportedType = errors.New("rapidcsv: unsupported conversion type")

	// ErrConversionFailure reports text that cannot be parsed as the
	// requested type.
	ErrConversionFailure = errors.New("rapidcsv: conversion failure")
)

// NotFoundError reports a failed name lookup.
type NotFoundError struct {
	// Kind is "column" or "row".
	Kind string
	// Name is the label that was looked up.
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("rapidcsv: %s not found: %q", e.Kind, e.Name)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// OutOfRangeError reports an index outside the grid bounds.
type OutOfRangeError struct {
	// Kind is "column" or "row".
	Kind string
	// Index is the logical index that was requested.
	Index int
	// Count is the current logical dimension of the grid.
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("rapidcsv: %s index %d out of range (count %d)", e.Kind, e.Index, e.Count)
}

// Unwrap returns ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// UnsupportedTypeError reports a typed access with no registered converter.
type UnsupportedTypeError struct {
	// Type is the name of the requested Go type.
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("rapidcsv: unsupported conversion type %s", e.Type)
}

// Unwrap returns ErrUnsupportedType.
func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// ConversionError reports text that could not be converted to or from the
// requested type.
type ConversionError struct {
	// Value is the text (or value representation) that failed to convert.
	Value string
	// Type is the name of the requested Go type.
	Type string
	// Err is the underlying parse error, if any.
	Err error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rapidcsv: cannot convert %q to %s: %v", e.Value, e.Type, e.Err)
	}
	return fmt.Sprintf("rapidcsv: cannot convert %q to %s", e.Value, e.Type)
}

// Unwrap returns ErrConversionFailure.
func (e *ConversionError) Unwrap() error {
	return ErrConversionFailure
}

// OptionsError reports an invalid configuration value.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "rapidcsv: invalid " + e.Field + ": " + e.Message
}
