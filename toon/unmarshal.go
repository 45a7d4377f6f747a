package toon

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal decodes a TOON document into v, which must be a non-nil
// pointer to a slice of structs or a slice of map[string]interface{}.
//
// For struct targets, columns are matched to exported fields by
// `toon:"name"` tag or field name, with a case-insensitive fallback;
// unmatched columns are ignored. A decoded value that cannot be
// represented by the target field type yields a *TypeCoercionError:
// the decoder never narrows or widens values silently. Null decodes
// to the zero value, or to nil for pointer fields.
//
// For map targets, every row becomes a map holding the native Go form
// of each non-null cell: bool, int64, float64, or string.
func Unmarshal(data []byte, v interface{}) error {
	t, err := Decode(string(data))
	if err != nil {
		return err
	}
	return unmarshalTable(t, v)
}

func unmarshalTable(t *Table, v interface{}) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return &UsageError{"Unmarshal", fmt.Sprintf("cannot unmarshal into %T: need a non-nil pointer to a slice", v)}
	}

	slice := rv.Elem()
	elem := slice.Type().Elem()

	switch elem.Kind() {
	case reflect.Struct:
		return unmarshalStructs(t, slice, elem)
	case reflect.Map:
		if elem.Key().Kind() != reflect.String || elem.Elem().Kind() != reflect.Interface || elem.Elem().NumMethod() != 0 {
			return &UsageError{"Unmarshal", fmt.Sprintf("map rows must be map[string]interface{}, not %v", elem)}
		}
		return unmarshalMaps(t, slice, elem)
	default:
		return &UsageError{"Unmarshal", fmt.Sprintf("cannot unmarshal rows into %v", elem)}
	}
}

func unmarshalStructs(t *Table, slice reflect.Value, elem reflect.Type) error {
	fields := structFields(elem)

	// Column index -> struct field index, or -1 for ignored columns.
	cols := t.columns
	target := make([]int, len(cols))
	for i, col := range cols {
		target[i] = -1
		for _, f := range fields {
			if f.name == col {
				target[i] = f.idx
				break
			}
		}
		if target[i] >= 0 {
			continue
		}
		for _, f := range fields {
			if strings.EqualFold(f.name, col) {
				target[i] = f.idx
				break
			}
		}
	}

	out := reflect.MakeSlice(slice.Type(), len(t.rows), len(t.rows))
	for i, row := range t.rows {
		for j, val := range row {
			if target[j] < 0 {
				continue
			}
			fv := out.Index(i).Field(target[j])
			if err := coerce(val, fv, cols[j], i); err != nil {
				return err
			}
		}
	}

	slice.Set(out)
	return nil
}

func unmarshalMaps(t *Table, slice reflect.Value, elem reflect.Type) error {
	out := reflect.MakeSlice(slice.Type(), 0, len(t.rows))
	for _, row := range t.rows {
		m := reflect.MakeMapWithSize(elem, len(t.columns))
		for j, val := range row {
			nv := reflect.Zero(elem.Elem())
			if val.Type() != NullType {
				nv = reflect.ValueOf(native(val))
			}
			m.SetMapIndex(reflect.ValueOf(t.columns[j]), nv)
		}
		out = reflect.Append(out, m)
	}

	slice.Set(out)
	return nil
}

// native returns the Go representation of a Value for interface{}
// targets.
func native(v Value) interface{} {
	switch v.typ {
	case BoolType:
		return v.b
	case IntType:
		return v.i
	case FloatType:
		return v.f
	case StringType:
		return v.s
	default:
		return nil
	}
}

// coerce stores a decoded Value into a struct field, failing with a
// *TypeCoercionError when the field type cannot represent the value
// exactly.
func coerce(v Value, rv reflect.Value, col string, row int) error {
	if v.typ == NullType {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr:
		p := reflect.New(rv.Type().Elem())
		if err := coerce(v, p.Elem(), col, row); err != nil {
			return err
		}
		rv.Set(p)
		return nil

	case reflect.Interface:
		if rv.NumMethod() == 0 {
			rv.Set(reflect.ValueOf(native(v)))
			return nil
		}
	}

	fail := func() error {
		return &TypeCoercionError{Col: col, Row: row, Val: v, Target: rv.Type().String()}
	}

	switch v.typ {
	case BoolType:
		if rv.Kind() == reflect.Bool {
			rv.SetBool(v.b)
			return nil
		}

	case IntType:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.OverflowInt(v.i) {
				return fail()
			}
			rv.SetInt(v.i)
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if v.i < 0 || rv.OverflowUint(uint64(v.i)) {
				return fail()
			}
			rv.SetUint(uint64(v.i))
			return nil
		case reflect.Float32, reflect.Float64:
			f := float64(v.i)
			if rv.Kind() == reflect.Float32 {
				f = float64(float32(f))
			}
			// Exactness check; f can round up to 2^63, which does not
			// convert back to int64.
			if f >= 1<<63 || int64(f) != v.i {
				return fail()
			}
			rv.SetFloat(f)
			return nil
		}

	case FloatType:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			if rv.OverflowFloat(v.f) {
				return fail()
			}
			rv.SetFloat(v.f)
			return nil
		}

	case StringType:
		if rv.Kind() == reflect.String {
			rv.SetString(v.s)
			return nil
		}
	}

	return fail()
}
