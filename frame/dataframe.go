package frame

import (
	"fmt"
	"reflect"
)

// DataFrame is a Frame over a slice of structs, e.g.
//
//	var hits []Association
//	type Association struct {
//	    Chrom int
//	    Pos   float64
//	    P     float64
//	}
//
// Every exported field of integer, float or string kind becomes a column.
// Exported methods on the element type without parameters and with a
// single integer, float or string result become computed columns:
//
//	func (a Association) Expected() float64 { ... }
type DataFrame struct {
	Data   interface{}
	N      int
	Fields []Field

	rows reflect.Value
}

var _ Frame = (*DataFrame)(nil)

type Field struct {
	// Name of the field or method.
	Name string

	// Type of the field or return type of method.
	Type FieldType

	// Value returns the normalized value of the field for the i'th
	// element in the data frame.
	Value func(i int) interface{}
}

// FieldType represents the basic type of a field.
type FieldType uint

const (
	IntType FieldType = iota
	FloatType
	StringType
)

func (t FieldType) String() string {
	switch t {
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	}
	return fmt.Sprintf("FieldType(%d)", uint(t))
}

func kindType(k reflect.Kind) (FieldType, bool) {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IntType, true
	case reflect.Float32, reflect.Float64:
		return FloatType, true
	case reflect.String:
		return StringType, true
	}
	return 0, false
}

func normalizeValue(v reflect.Value) interface{} {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	return v.String()
}

// NewDataFrame constructs a data frame from data which must be a slice of
// structs. All fields which can be used in a plot are set up.
func NewDataFrame(data interface{}) (*DataFrame, error) {
	if data == nil {
		return nil, fmt.Errorf("frame: cannot convert nil to data frame")
	}
	t := reflect.TypeOf(data)
	if t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("frame: cannot convert %s to data frame", t.String())
	}

	v := reflect.ValueOf(data)
	et := t.Elem()
	df := &DataFrame{
		Data: data,
		N:    v.Len(),
		rows: v,
	}

	// Fields first.
	for i := 0; i < et.NumField(); i++ {
		f := et.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		ft, ok := kindType(f.Type.Kind())
		if !ok {
			continue
		}
		idx := i
		df.Fields = append(df.Fields, Field{
			Name: f.Name,
			Type: ft,
			Value: func(i int) interface{} {
				return normalizeValue(v.Index(i).Field(idx))
			},
		})
	}

	// The same for methods.
	for i := 0; i < et.NumMethod(); i++ {
		m := et.Method(i)
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 {
			continue
		}
		ft, ok := kindType(mt.Out(0).Kind())
		if !ok {
			continue
		}
		df.Fields = append(df.Fields, Field{
			Name: m.Name,
			Type: ft,
			Value: func(i int) interface{} {
				return normalizeValue(m.Func.Call([]reflect.Value{v.Index(i)})[0])
			},
		})
	}

	return df, nil
}

func (df *DataFrame) Len() int { return df.N }

// Release is a no-op, a DataFrame holds only Go memory.
func (df *DataFrame) Release() {}

// Field looks up the field or method called name.
func (df *DataFrame) Field(name string) (Field, error) {
	for _, f := range df.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w %q in %T", ErrNoColumn, name, df.Data)
}

// Column copies the numeric field name into a new slice.
func (df *DataFrame) Column(name string) ([]float64, error) {
	f, err := df.Field(name)
	if err != nil {
		return nil, err
	}
	if f.Type == StringType {
		return nil, fmt.Errorf("%w: %q is a %s field", ErrNotNumeric, name, f.Type)
	}
	col := make([]float64, df.N)
	for i := range col {
		x, _ := Float(f.Value(i))
		col[i] = x
	}
	return col, nil
}

// Unique returns the distinct values of field name in order of appearance.
func (df *DataFrame) Unique(name string) ([]interface{}, error) {
	f, err := df.Field(name)
	if err != nil {
		return nil, err
	}
	levels := NewLevels()
	for i := 0; i < df.N; i++ {
		levels.Add(f.Value(i))
	}
	return levels.Elements(), nil
}

// Filter extracts all rows from df where field==value.
func (df *DataFrame) Filter(name string, value interface{}) (Frame, error) {
	f, err := df.Field(name)
	if err != nil {
		return nil, err
	}
	want, err := Normalize(value)
	if err != nil {
		return nil, err
	}
	if _, isString := want.(string); isString != (f.Type == StringType) {
		return nil, fmt.Errorf("%w: cannot compare %s field %q with %T",
			ErrBadValue, f.Type, name, value)
	}
	result := reflect.MakeSlice(df.rows.Type(), 0, 10)
	for i := 0; i < df.N; i++ {
		if !Equal(f.Value(i), want) {
			continue
		}
		result = reflect.Append(result, df.rows.Index(i))
	}
	return NewDataFrame(result.Interface())
}
