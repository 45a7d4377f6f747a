package toon

import "fmt"

// A UsageError is returned when the package is used in an inappropriate
// way, e.g. appending a row to a TableBuilder before its columns are
// set, or marshalling a Go type the adapter does not support.
type UsageError struct {
	API string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("toon: usage error in %v: %v", e.API, e.Msg)
}

// A FormatError is returned when Decode encounters text that is not
// well-formed TOON. Line is the 1-based physical line the error was
// detected on; Row is the 0-based index of the offending data row, or
// -1 when the error is not attributable to a particular row.
type FormatError struct {
	Msg  string
	Line int
	Row  int
}

func (e *FormatError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("toon: format error: %v (line %v, row %v)", e.Msg, e.Line, e.Row)
	}
	return fmt.Sprintf("toon: format error: %v (line %v)", e.Msg, e.Line)
}

// A TypeCoercionError is returned by Unmarshal when a decoded Value
// cannot be represented by the Go type it is being unmarshalled into,
// e.g. an integer too large for an int8 field. The codec itself never
// returns this error; Decode always yields values in the five TOON
// scalar types.
type TypeCoercionError struct {
	Col    string
	Row    int
	Val    Value
	Target string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("toon: cannot coerce %v into %v (column %q, row %v)", e.Val, e.Target, e.Col, e.Row)
}
