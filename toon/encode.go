package toon

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Encode serializes a Table to its canonical TOON text. Encoding is
// total for any built Table and deterministic: re-encoding a decoded
// document is byte-identical. Lines are terminated with \n, including
// the last.
func Encode(t *Table) string {
	var b strings.Builder

	if t.name != "" {
		b.WriteByte(nameMarker)
		b.WriteString(t.name)
		b.WriteByte('\n')
	}

	for i, col := range t.columns {
		if i > 0 {
			b.WriteByte(delimiter)
		}
		writeString(&b, col, i == 0)
	}
	b.WriteByte('\n')

	for _, row := range t.rows {
		for i, v := range row {
			if i > 0 {
				b.WriteByte(delimiter)
			}
			writeValue(&b, v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// EncodeTo writes the canonical encoding of t to w.
func EncodeTo(w io.Writer, t *Table) error {
	_, err := io.WriteString(w, Encode(t))
	return err
}

// WriteFile writes the canonical encoding of t to the file at path,
// creating or truncating it.
func WriteFile(path string, t *Table) error {
	return os.WriteFile(path, []byte(Encode(t)), 0644)
}

func writeValue(b *strings.Builder, v Value) {
	if v.typ == StringType {
		writeString(b, v.s, false)
		return
	}
	b.WriteString(v.Text())
}

// writeString emits a string field, quoting it whenever the bare text
// would not decode back to the same string: text that re-infers as a
// non-string type, text containing the delimiter, a quote, or a line
// terminator, a dash run that could read as a separator line, and, in
// the leading header position, text starting with the name marker.
func writeString(b *strings.Builder, s string, headerStart bool) {
	if !stringNeedsQuoting(s) && !(headerStart && strings.HasPrefix(s, string(nameMarker))) {
		b.WriteString(s)
		return
	}

	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		if s[i] == quote {
			b.WriteByte(quote)
		}
		b.WriteByte(s[i])
	}
	b.WriteByte(quote)
}

func stringNeedsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, string(delimiter)+string(quote)+"\r\n") {
		return true
	}
	if isDashes(s) {
		return true
	}
	return Infer(s).Type() != StringType
}

// formatFloat renders a float in the shortest form that parses back to
// the same value, with a fractional marker or exponent so the decoder
// never re-infers it as an integer.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
