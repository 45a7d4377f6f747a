package toon

// The scanner splits a TOON document into records, one per logical
// line. It is the quote-state machine: the delimiter and line
// terminators separate fields and records only while outside quotes, a
// doubled quote inside quotes is a literal quote, and quote state
// carries across physical lines for multi-line fields. All scan state
// lives in the scanner value, so concurrent decodes never share
// anything.

const (
	delimiter = ','
	quote     = '"'
)

type scanState int

const (
	scanUnquoted  scanState = iota // outside any quoted field
	scanQuoted                     // inside a quoted field
	scanQuoteSeen                  // inside a quoted field, just saw a quote
)

// A field is one delimited cell of a record. Quoted fields skip type
// inference entirely.
type field struct {
	text   string
	quoted bool
}

// A record is the parsed form of one logical line. blank marks a
// physically empty line, which is distinct from a record holding a
// single empty field written as "".
type record struct {
	fields []field
	line   int
	blank  bool
}

type scanner struct {
	in   string
	pos  int
	line int // 1-based line number at pos
	done bool
}

func newScanner(in string) *scanner {
	return &scanner{in: in, line: 1}
}

// next returns the next record, or ok=false at end of input.
func (s *scanner) next() (rec record, ok bool, err error) {
	if s.done || s.pos >= len(s.in) {
		return record{}, false, nil
	}

	rec.line = s.line
	state := scanUnquoted
	openLine := s.line

	var cur []byte
	curQuoted := false
	sawAny := false // any character on this logical line at all

	emitField := func() {
		rec.fields = append(rec.fields, field{text: string(cur), quoted: curQuoted})
		cur = cur[:0]
		curQuoted = false
	}

	for s.pos < len(s.in) {
		c := s.in[s.pos]
		s.pos++

		if c == '\n' {
			s.line++
		}

		switch state {
		case scanUnquoted:
			switch c {
			case delimiter:
				sawAny = true
				emitField()
			case quote:
				if len(cur) > 0 {
					return record{}, false, &FormatError{"bare quote in unquoted field", s.line, -1}
				}
				sawAny = true
				curQuoted = true
				state = scanQuoted
				openLine = s.line
			case '\r':
				// Only significant as part of a \r\n terminator;
				// anything else is field content.
				if s.pos < len(s.in) && s.in[s.pos] == '\n' {
					s.pos++
					s.line++
					emitField()
					rec.blank = !sawAny
					return rec, true, nil
				}
				sawAny = true
				cur = append(cur, c)
			case '\n':
				emitField()
				rec.blank = !sawAny
				return rec, true, nil
			default:
				sawAny = true
				cur = append(cur, c)
			}

		case scanQuoted:
			if c == quote {
				state = scanQuoteSeen
			} else {
				// Inside quotes every byte is field content, \r
				// included: the encoder emits quoted strings verbatim,
				// so rewriting terminators here would break round
				// trips.
				cur = append(cur, c)
			}

		case scanQuoteSeen:
			switch c {
			case quote:
				cur = append(cur, quote)
				state = scanQuoted
			case delimiter:
				emitField()
				state = scanUnquoted
			case '\n':
				emitField()
				return rec, true, nil
			case '\r':
				if s.pos < len(s.in) && s.in[s.pos] == '\n' {
					s.pos++
					s.line++
					emitField()
					return rec, true, nil
				}
				return record{}, false, &FormatError{"unexpected character after closing quote", s.line, -1}
			default:
				return record{}, false, &FormatError{"unexpected character after closing quote", s.line, -1}
			}
		}
	}

	// End of input.
	s.done = true
	switch state {
	case scanQuoted:
		return record{}, false, &FormatError{"unterminated quoted field", openLine, -1}
	default:
		emitField()
		rec.blank = !sawAny
		return rec, true, nil
	}
}
