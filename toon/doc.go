// Package toon reads and writes TOON, a compact line-oriented text
// serialization for tabular data.
//
// A TOON document is an optional table-name line, a header line of
// comma-separated column names, and one data line per row:
//
//	@users
//	name,age,active
//	Alice,30,true
//	Bob,25,false
//
// Unquoted fields are typed by their lexical form: the empty field is
// null, "true"/"false" are booleans, digit runs are 64-bit integers,
// forms with a decimal point or exponent are 64-bit floats, and
// everything else is a string. A field containing the delimiter, a
// quote character, or a newline is quoted with double quotes, internal
// quotes doubled, exactly as in delimiter-separated-value formats.
// Quoted fields are always strings.
//
// Decode and Encode convert between documents and the Table value
// shared by both. Marshal and Unmarshal convert between documents and
// native Go slices of structs or maps.
package toon
