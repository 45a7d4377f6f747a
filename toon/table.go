package toon

import (
	"fmt"
	"strings"
)

// A Table is the in-memory form of a TOON document: an optional name,
// an ordered list of unique column names, and an ordered list of rows
// whose values align positionally with the columns. A Table is
// immutable once built; construct one with a TableBuilder.
type Table struct {
	name    string
	columns []string
	rows    [][]Value
}

// Name returns the table name, or the empty string for an anonymous
// table.
func (t *Table) Name() string {
	return t.name
}

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Row returns a copy of row i. It panics if i is out of range.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// Rows returns a copy of all rows in order.
func (t *Table) Rows() [][]Value {
	rows := make([][]Value, len(t.rows))
	for i := range t.rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// A TableBuilder accumulates a Table. Set the columns first, append
// zero or more rows, then call Build; the builder cannot be reused
// afterwards.
type TableBuilder struct {
	name    string
	columns []string
	rows    [][]Value
	built   bool
}

// NewTableBuilder creates a builder for a table with the given name.
// Pass the empty string for an anonymous table.
func NewTableBuilder(name string) *TableBuilder {
	return &TableBuilder{name: name}
}

// Columns sets the ordered column names. Names must be non-empty and
// unique, and may be set only once.
func (b *TableBuilder) Columns(cols ...string) error {
	if b.built {
		return &UsageError{"TableBuilder.Columns", "builder already built"}
	}
	if b.columns != nil {
		return &UsageError{"TableBuilder.Columns", "columns already set"}
	}
	if len(cols) == 0 {
		return &UsageError{"TableBuilder.Columns", "at least one column is required"}
	}

	seen := make(map[string]bool, len(cols))
	for _, col := range cols {
		if col == "" {
			return &UsageError{"TableBuilder.Columns", "column names must be non-empty"}
		}
		if seen[col] {
			return &UsageError{"TableBuilder.Columns", fmt.Sprintf("duplicate column %q", col)}
		}
		seen[col] = true
	}

	b.columns = make([]string, len(cols))
	copy(b.columns, cols)
	return nil
}

// Append adds a row. The number of values must equal the number of
// columns, and every value must be a constructed scalar (not the zero
// Value).
func (b *TableBuilder) Append(vals ...Value) error {
	if b.built {
		return &UsageError{"TableBuilder.Append", "builder already built"}
	}
	if b.columns == nil {
		return &UsageError{"TableBuilder.Append", "columns must be set before rows"}
	}
	if len(vals) != len(b.columns) {
		return &UsageError{"TableBuilder.Append",
			fmt.Sprintf("row has %v values, table has %v columns", len(vals), len(b.columns))}
	}
	for i, v := range vals {
		if v.Type() == NoType {
			return &UsageError{"TableBuilder.Append", fmt.Sprintf("value %v is the zero Value", i)}
		}
	}

	row := make([]Value, len(vals))
	copy(row, vals)
	b.rows = append(b.rows, row)
	return nil
}

// Build finalizes and returns the Table.
func (b *TableBuilder) Build() (*Table, error) {
	if b.built {
		return nil, &UsageError{"TableBuilder.Build", "builder already built"}
	}
	if b.columns == nil {
		return nil, &UsageError{"TableBuilder.Build", "columns must be set"}
	}
	// The name line has no quoting mechanism, so the delimiter, the
	// quote character, and line terminators cannot appear in a name.
	if strings.ContainsAny(b.name, string(delimiter)+string(quote)+"\r\n") {
		return nil, &UsageError{"TableBuilder.Build", "table name must not contain delimiters, quotes, or line terminators"}
	}

	b.built = true
	return &Table{name: b.name, columns: b.columns, rows: b.rows}, nil
}
