package toon

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Marshal serializes a slice of Go values to an anonymous TOON
// document. The slice element type determines the columns:
//
//   - For a slice of structs, each exported field is a column, in
//     declaration order. A `toon:"name"` tag renames the column and
//     `toon:"-"` omits the field.
//   - For a slice of map[string]interface{}, the columns are the union
//     of the keys of all rows, in sorted order; a row missing a key
//     holds null in that column.
//
// Field values must be Go scalars: booleans, integers, floats,
// strings, or pointers/interfaces holding one (nil becomes null). A
// uint64 beyond the int64 range is written as its decimal digits and
// stays a string across a round trip rather than losing precision.
func Marshal(v interface{}) ([]byte, error) {
	return MarshalNamed("", v)
}

// MarshalNamed is Marshal with a table-name line.
func MarshalNamed(name string, v interface{}) ([]byte, error) {
	t, err := tableOf(name, v)
	if err != nil {
		return nil, err
	}
	return []byte(Encode(t)), nil
}

func tableOf(name string, v interface{}) (*Table, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, &UsageError{"Marshal", fmt.Sprintf("cannot marshal %T: need a slice of structs or maps", v)}
	}

	elem := rv.Type().Elem()
	switch elem.Kind() {
	case reflect.Struct:
		return structTable(name, rv, elem)
	case reflect.Map:
		if elem.Key().Kind() != reflect.String {
			return nil, &UsageError{"Marshal", fmt.Sprintf("cannot marshal %T: map keys must be strings", v)}
		}
		return mapTable(name, rv)
	default:
		return nil, &UsageError{"Marshal", fmt.Sprintf("cannot marshal %T: need a slice of structs or maps", v)}
	}
}

// structField is one column-bearing field of a marshalled struct type.
type structField struct {
	name string
	idx  int
}

func structFields(t reflect.Type) []structField {
	var fields []structField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("toon"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, structField{name: name, idx: i})
	}
	return fields
}

func structTable(name string, rv reflect.Value, elem reflect.Type) (*Table, error) {
	fields := structFields(elem)
	if len(fields) == 0 {
		return nil, &UsageError{"Marshal", fmt.Sprintf("struct type %v has no marshallable fields", elem)}
	}

	b := NewTableBuilder(name)
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.name
	}
	if err := b.Columns(cols...); err != nil {
		return nil, err
	}

	row := make([]Value, len(fields))
	for i := 0; i < rv.Len(); i++ {
		for j, f := range fields {
			val, err := scalarOf(rv.Index(i).Field(f.idx))
			if err != nil {
				return nil, err
			}
			row[j] = val
		}
		if err := b.Append(row...); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

func mapTable(name string, rv reflect.Value) (*Table, error) {
	// Deterministic output needs a stable column order, so the union
	// of all row keys is sorted, in the manner of sorted map keys in
	// other text encoders.
	seen := map[string]bool{}
	var cols []string
	for i := 0; i < rv.Len(); i++ {
		iter := rv.Index(i).MapRange()
		for iter.Next() {
			k := iter.Key().String()
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)

	if len(cols) == 0 {
		return nil, &UsageError{"Marshal", "map rows have no keys to use as columns"}
	}

	b := NewTableBuilder(name)
	if err := b.Columns(cols...); err != nil {
		return nil, err
	}

	row := make([]Value, len(cols))
	for i := 0; i < rv.Len(); i++ {
		m := rv.Index(i)
		for j, col := range cols {
			mv := m.MapIndex(reflect.ValueOf(col))
			if !mv.IsValid() {
				row[j] = Null()
				continue
			}
			val, err := scalarOf(mv)
			if err != nil {
				return nil, err
			}
			row[j] = val
		}
		if err := b.Append(row...); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// scalarOf converts a native Go value to a TOON scalar.
func scalarOf(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return String(strconv.FormatUint(u, 10)), nil
		}
		return Int(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil

	case reflect.String:
		return String(rv.String()), nil

	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return scalarOf(rv.Elem())

	default:
		return Value{}, &UsageError{"Marshal", fmt.Sprintf("cannot marshal %v as a TOON scalar", rv.Type())}
	}
}
