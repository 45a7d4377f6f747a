package toon

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// nameMarker introduces the optional table-name line. A document whose
// first record is a single unquoted field beginning with this marker
// names the table; a single-column header that happens to start with
// the marker must be quoted by the encoder.
const nameMarker = '@'

// Decode parses a TOON document into a Table. It fails fast with a
// *FormatError on the first structural violation; no partial table is
// ever returned. Decode keeps no state between calls, so independent
// inputs may be decoded concurrently.
func Decode(text string) (*Table, error) {
	s := newScanner(text)

	name := ""
	rec, ok, err := nextContent(s)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &FormatError{"empty document", s.line, -1}
	}

	if len(rec.fields) == 1 && !rec.fields[0].quoted && strings.HasPrefix(rec.fields[0].text, string(nameMarker)) {
		name = rec.fields[0].text[1:]
		if name == "" {
			return nil, &FormatError{"missing table name after marker", rec.line, -1}
		}

		rec, ok, err = nextContent(s)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &FormatError{"missing header line", s.line, -1}
		}
	}

	columns := make([]string, 0, len(rec.fields))
	seen := make(map[string]bool, len(rec.fields))
	for _, f := range rec.fields {
		if f.text == "" {
			return nil, &FormatError{"empty column name", rec.line, -1}
		}
		if seen[f.text] {
			return nil, &FormatError{fmt.Sprintf("duplicate column %q", f.text), rec.line, -1}
		}
		seen[f.text] = true
		columns = append(columns, f.text)
	}

	t := &Table{name: name, columns: columns}

	first := true
	for {
		rec, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return t, nil
		}

		// A blank line is a row of one null in a single-column table;
		// everywhere else it is insignificant spacing between rows.
		if rec.blank {
			if len(columns) == 1 {
				// Data has begun; a later dash line is a row, not a
				// separator.
				t.rows = append(t.rows, []Value{Null()})
				first = false
			}
			continue
		}

		// Tolerate a dash separator between header and data, as
		// written by earlier emitters of the format.
		if first && isSeparator(rec) {
			first = false
			continue
		}
		first = false

		if len(rec.fields) != len(columns) {
			return nil, &FormatError{
				fmt.Sprintf("row has %v fields, header has %v columns", len(rec.fields), len(columns)),
				rec.line,
				len(t.rows),
			}
		}

		row := make([]Value, len(rec.fields))
		for i, f := range rec.fields {
			if f.quoted {
				row[i] = String(f.text)
			} else {
				row[i] = Infer(f.text)
			}
		}
		t.rows = append(t.rows, row)
	}
}

// DecodeFrom reads r to the end and decodes the result.
func DecodeFrom(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(string(data))
}

// ReadFile decodes the TOON document stored at path.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(string(data))
}

// nextContent returns the next non-blank record.
func nextContent(s *scanner) (record, bool, error) {
	for {
		rec, ok, err := s.next()
		if err != nil || !ok {
			return record{}, false, err
		}
		if !rec.blank {
			return rec, true, nil
		}
	}
}

func isSeparator(rec record) bool {
	if len(rec.fields) != 1 || rec.fields[0].quoted {
		return false
	}
	return isDashes(rec.fields[0].text)
}

func isDashes(s string) bool {
	if len(s) < 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			return false
		}
	}
	return true
}
