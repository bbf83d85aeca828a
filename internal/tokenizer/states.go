// Package tokenizer implements the incremental CSV row tokenizer.
//
// The tokenizer is a character-level finite state machine. It consumes a
// decoded character stream one rune (or one chunk) at a time and reassembles
// rows, so input may arrive in arbitrary pieces: a chunk can end in the
// middle of a field, a quoted run, or between the CR and LF of a row
// terminator.
//
// The machine is deliberately lenient and total. There are no reject states:
// every character sequence maps to some row sequence. Unescaped quotes
// inside unquoted fields are literal text, and text trailing a closed quoted
// run is appended literally rather than reopening quoting.
package tokenizer

import "fmt"

// state is the discrete tag of the tokenizer state machine.
type state uint8

const (
	// stateFieldStart is the initial state and the state entered after each
	// field or row boundary. A quote here opens a quoted field; anything
	// else starts an unquoted field.
	stateFieldStart state = iota
	// stateUnquotedField reads plain field content. Quotes are not special
	// once inside an unquoted field.
	stateUnquotedField
	// stateQuotedField reads content between quotes. Delimiters and line
	// terminators are literal here.
	stateQuotedField
	// stateQuoteInQuoted follows a quote inside a quoted field: either the
	// escape half of a doubled quote, the close of the field, or the start
	// of trailing literal text.
	stateQuoteInQuoted
	// stateAfterQuoted reads literal text trailing a closed quoted run. It
	// behaves like stateUnquotedField.
	stateAfterQuoted
)

// String returns the state name for diagnostics.
func (s state) String() string {
	switch s {
	case stateFieldStart:
		return "FieldStart"
	case stateUnquotedField:
		return "InUnquotedField"
	case stateQuotedField:
		return "InQuotedField"
	case stateQuoteInQuoted:
		return "QuoteSeenInQuotedField"
	case stateAfterQuoted:
		return "AfterQuotedField"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}
