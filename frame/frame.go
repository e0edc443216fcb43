// Package frame defines the tabular data gwasplot reads from.
//
// A Frame only has to offer named numeric columns, the distinct values of
// a column and row filtering by equality. Two implementations exist: the
// reflection based DataFrame in this package which works on plain slices
// of structs and arrowframe.Frame which works on Apache Arrow records.
//
// Values handed out by Unique and accepted by Filter are normalized to one
// of three Go types:
//
//	int64      for integer data
//	float64    for continous data
//	string     for discrete data
//
// Unsigned integers are converted to int64 which may overflow for huge
// uint64 values.
package frame

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var (
	ErrNoColumn   = errors.New("frame: no such column")
	ErrNotNumeric = errors.New("frame: column is not numeric")
	ErrBadValue   = errors.New("frame: unsupported value type")
)

// Frame is the read-only view on tabular data needed to draw a plot.
type Frame interface {
	// Len is the number of rows.
	Len() int

	// Column extracts column name as a dense slice. The slice may share
	// memory with the frame and must not be modified.
	Column(name string) ([]float64, error)

	// Unique returns the distinct values of column name in the order
	// they first appear.
	Unique(name string) ([]interface{}, error)

	// Filter returns the rows where column name equals value.
	Filter(name string, value interface{}) (Frame, error)

	// Release frees resources held by frames obtained through Filter.
	Release()
}

// Normalize converts v to int64, float64 or string.
func Normalize(v interface{}) (interface{}, error) {
	switch v.(type) {
	case int64, float64, string:
		return v, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrBadValue, v)
}

// Equal compares two normalized values. Numbers compare by value, so
// int64(3) equals float64(3).
func Equal(a, b interface{}) bool {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case int64:
		switch y := b.(type) {
		case int64:
			return x == y
		case float64:
			return float64(x) == y
		}
	case float64:
		switch y := b.(type) {
		case int64:
			return x == float64(y)
		case float64:
			return x == y || (math.IsNaN(x) && math.IsNaN(y))
		}
	}
	return false
}

// Float converts a normalized numeric value to float64.
func Float(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
