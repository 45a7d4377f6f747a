package toon

import (
	"math"
	"strconv"
	"strings"
)

// Infer classifies the text of an unquoted field as one of the five
// scalar types. The classifier is ordered and strict: null, then bool,
// then the non-finite float literals, then integer, then float, then
// string. Once a lexical pattern matches, a parse failure falls
// through to string, never to a looser numeric type; "3.14.15" matches
// neither numeric pattern and is a string, and an integer too large
// for int64 stays a string verbatim rather than silently losing
// precision as a float.
//
// Decode applies Infer to every unquoted data field. It is exported
// for adapters that ingest untyped tabular text from elsewhere, such
// as CSV.
func Infer(text string) Value {
	if text == "" {
		return Null()
	}

	if strings.EqualFold(text, "true") {
		return Bool(true)
	}
	if strings.EqualFold(text, "false") {
		return Bool(false)
	}

	switch text {
	case "nan":
		return Float(math.NaN())
	case "inf", "+inf":
		return Float(math.Inf(1))
	case "-inf":
		return Float(math.Inf(-1))
	}

	if isIntegerText(text) {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return String(text)
		}
		return Int(i)
	}

	if isFloatText(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(f, 0) {
			return String(text)
		}
		return Float(f)
	}

	return String(text)
}

// isIntegerText reports whether s is an optional sign followed by
// digits with no redundant leading zero.
func isIntegerText(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	if s[0] == '0' && len(s) > 1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isFloatText reports whether s is an optional sign followed by
// digits with a fractional part, an exponent, or both. A form with
// neither is an integer's business, never a float's.
func isFloatText(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return false
	}

	sawMark := false

	if i < len(s) && s[i] == '.' {
		sawMark = true
		i++
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		sawMark = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	return sawMark && i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
