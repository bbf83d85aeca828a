package tokenizer

import "unicode/utf8"

// Structural characters. The delimiter and quote are fixed: this tokenizer
// reads comma-separated, double-quoted CSV only.
const (
	comma = ','
	quote = '"'
	cr    = '\r'
	lf    = '\n'

	// bom is the byte-order mark code point, stripped when it is the very
	// first character of a stream and never elsewhere.
	bom = '\ufeff'
)

// Tokenizer reconstructs CSV rows from a decoded character stream.
//
// A Tokenizer is owned by exactly one stream. It is not restartable: to
// tokenize another stream, create a new Tokenizer with New.
//
// Feed characters with Accept or Feed, then call Flush once at end of input
// to recover any buffered final row. An empty stream still yields one row
// with one empty field.
type Tokenizer struct {
	state state

	// field is the current field buffer, built rune by rune.
	field []byte
	// row holds the fields already closed for the row in progress.
	row []string

	// seenFirst is set once the first character of the stream has been
	// observed, gating the one-shot BOM strip.
	seenFirst bool
	// pendingCR records a CR whose meaning is still open: terminator half
	// of CRLF if an LF follows, otherwise a literal character. It survives
	// chunk boundaries.
	pendingCR bool
	// rowOpen reports whether a row is in progress. Seeded true so that an
	// input with no characters at all still flushes one row with one empty
	// field. Cleared when a row is emitted, set again by the next character.
	rowOpen bool
}

// New creates a Tokenizer positioned at the start of a stream.
func New() *Tokenizer {
	return &Tokenizer{state: stateFieldStart, rowOpen: true}
}

// Accept processes one decoded character. When the character completes a row
// terminator (CRLF or bare LF), the finished row is returned with ok true.
// Otherwise ok is false and the character has been absorbed into the
// tokenizer state.
func (t *Tokenizer) Accept(r rune) (row []string, ok bool) {
	if !t.seenFirst {
		t.seenFirst = true
		if r == bom {
			return nil, false
		}
	}
	t.rowOpen = true

	if t.pendingCR {
		t.pendingCR = false
		if r == lf {
			return t.closeRow(), true
		}
		// Lone CR: a literal character, not a terminator.
		t.appendRune(cr)
	}

	switch t.state {
	case stateFieldStart:
		if r == quote {
			t.state = stateQuotedField
			return nil, false
		}
		t.state = stateUnquotedField
		return t.acceptUnquoted(r)

	case stateUnquotedField, stateAfterQuoted:
		return t.acceptUnquoted(r)

	case stateQuotedField:
		if r == quote {
			t.state = stateQuoteInQuoted
			return nil, false
		}
		// Delimiters and terminators are literal inside quotes.
		t.appendRune(r)
		return nil, false

	case stateQuoteInQuoted:
		switch r {
		case quote:
			// Doubled quote: one literal quote, still quoted.
			t.appendRune(quote)
			t.state = stateQuotedField
		case comma:
			t.closeField()
		case lf:
			return t.closeRow(), true
		case cr:
			// Trailing text follows the closed quoted run unless an LF
			// turns this CR into a terminator.
			t.state = stateAfterQuoted
			t.pendingCR = true
		default:
			// Quoted run closed, trailing literal text follows.
			t.appendRune(r)
			t.state = stateAfterQuoted
		}
		return nil, false
	}
	return nil, false
}

// acceptUnquoted handles a character in the unquoted and after-quoted
// states, where only the delimiter and row terminators are structural.
func (t *Tokenizer) acceptUnquoted(r rune) (row []string, ok bool) {
	switch r {
	case comma:
		t.closeField()
	case lf:
		return t.closeRow(), true
	case cr:
		t.pendingCR = true
	default:
		t.appendRune(r)
	}
	return nil, false
}

// Feed processes a chunk of characters and returns every row completed by
// the chunk, in order. The chunk may be empty and may split fields, quoted
// runs, or CRLF terminators at any point.
func (t *Tokenizer) Feed(chunk string) [][]string {
	var rows [][]string
	for _, r := range chunk {
		if row, ok := t.Accept(r); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Flush signals end of input. If a field or row is buffered, including the
// empty field seeded at stream start, it is returned as the final row with
// ok true. A pending CR resolves to a literal character. After a row
// terminator ended the last row there is nothing buffered and ok is false.
func (t *Tokenizer) Flush() (row []string, ok bool) {
	if t.pendingCR {
		t.pendingCR = false
		t.rowOpen = true
		t.appendRune(cr)
	}
	if !t.rowOpen {
		return nil, false
	}
	return t.closeRow(), true
}

func (t *Tokenizer) appendRune(r rune) {
	t.field = utf8.AppendRune(t.field, r)
}

// closeField seals the current field buffer onto the row in progress and
// resets for the next field.
func (t *Tokenizer) closeField() {
	t.row = append(t.row, string(t.field))
	t.field = t.field[:0]
	t.state = stateFieldStart
}

// closeRow seals the current field and returns the finished row. A row
// always carries at least one field.
func (t *Tokenizer) closeRow() []string {
	t.closeField()
	row := t.row
	t.row = nil
	t.rowOpen = false
	return row
}
