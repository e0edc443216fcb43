// Package arrowframe provides a frame.Frame on top of an Apache Arrow
// record.
//
// Non-null float64 columns are handed out without copying: the slice
// returned by Column aliases the record's data buffer. All other numeric
// columns are converted, nulls become NaN.
package arrowframe

import (
	"context"
	"fmt"
	"math"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/compute"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/vdobler/gwasplot/frame"
)

// Frame is a frame.Frame backed by an arrow.Record.
type Frame struct {
	rec arrow.Record
	mem memory.Allocator
}

var _ frame.Frame = (*Frame)(nil)

// New wraps rec. The frame holds its own reference to rec, the caller
// keeps its reference and must release it as usual. A nil mem uses the
// default Go allocator for filtering.
func New(rec arrow.Record, mem memory.Allocator) *Frame {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	rec.Retain()
	return &Frame{rec: rec, mem: mem}
}

// Record returns the underlying record without retaining it.
func (f *Frame) Record() arrow.Record { return f.rec }

func (f *Frame) Len() int { return int(f.rec.NumRows()) }

// Release drops the reference New took on the record.
func (f *Frame) Release() { f.rec.Release() }

func (f *Frame) column(name string) (arrow.Array, error) {
	idx := f.rec.Schema().FieldIndices(name)
	if len(idx) == 0 {
		return nil, fmt.Errorf("%w %q", frame.ErrNoColumn, name)
	}
	return f.rec.Column(idx[0]), nil
}

// Column extracts column name as float64.
func (f *Frame) Column(name string) ([]float64, error) {
	col, err := f.column(name)
	if err != nil {
		return nil, err
	}
	if c, ok := col.(*array.Float64); ok && c.NullN() == 0 {
		return c.Float64Values(), nil
	}

	out := make([]float64, col.Len())
	for i := range out {
		v, err := valueAt(col, i)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		x, ok := frame.Float(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q has type %s", frame.ErrNotNumeric, name, col.DataType())
		}
		out[i] = x
	}
	return out, nil
}

// Unique returns the distinct non-null values of column name in order of
// appearance.
func (f *Frame) Unique(name string) ([]interface{}, error) {
	col, err := f.column(name)
	if err != nil {
		return nil, err
	}
	levels := frame.NewLevels()
	for i := 0; i < col.Len(); i++ {
		v, err := valueAt(col, i)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		if v != nil {
			levels.Add(v)
		}
	}
	return levels.Elements(), nil
}

// Filter selects the rows where column name equals value. The returned
// frame owns a new record and must be released.
func (f *Frame) Filter(name string, value interface{}) (frame.Frame, error) {
	col, err := f.column(name)
	if err != nil {
		return nil, err
	}
	want, err := frame.Normalize(value)
	if err != nil {
		return nil, err
	}

	mb := array.NewBooleanBuilder(f.mem)
	defer mb.Release()
	mb.Reserve(col.Len())
	for i := 0; i < col.Len(); i++ {
		v, err := valueAt(col, i)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		mb.UnsafeAppend(v != nil && frame.Equal(v, want))
	}
	mask := mb.NewBooleanArray()
	defer mask.Release()

	ctx := compute.WithAllocator(context.Background(), f.mem)
	rec, err := compute.FilterRecordBatch(ctx, f.rec, mask, compute.DefaultFilterOptions())
	if err != nil {
		return nil, fmt.Errorf("filter %s == %v: %w", name, value, err)
	}
	return &Frame{rec: rec, mem: f.mem}, nil
}

// valueAt returns the normalized value of row i or nil for a null.
func valueAt(col arrow.Array, i int) (interface{}, error) {
	if col.IsNull(i) {
		return nil, nil
	}
	switch c := col.(type) {
	case *array.Int8:
		return int64(c.Value(i)), nil
	case *array.Int16:
		return int64(c.Value(i)), nil
	case *array.Int32:
		return int64(c.Value(i)), nil
	case *array.Int64:
		return c.Value(i), nil
	case *array.Uint8:
		return int64(c.Value(i)), nil
	case *array.Uint16:
		return int64(c.Value(i)), nil
	case *array.Uint32:
		return int64(c.Value(i)), nil
	case *array.Uint64:
		return int64(c.Value(i)), nil
	case *array.Float32:
		return float64(c.Value(i)), nil
	case *array.Float64:
		return c.Value(i), nil
	case *array.String:
		return c.Value(i), nil
	case *array.LargeString:
		return c.Value(i), nil
	case *array.Dictionary:
		return valueAt(c.Dictionary(), c.GetValueIndex(i))
	}
	return nil, fmt.Errorf("%w: arrow type %s", frame.ErrBadValue, col.DataType())
}
