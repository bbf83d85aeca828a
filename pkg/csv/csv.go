// Package csv converts between rows of text fields and streaming CSV text.
//
// The package is built around four operations:
//
//   - EncodeRow - encode one row as an escaped, CRLF-terminated CSV line
//   - Reader - pull rows one at a time from a character stream
//   - Writer - push rows in order to an output stream
//   - Transform - map a row source through a per-row function
//
// Both directions stream: a Reader never materializes more than one row
// ahead of its consumer, and a Writer emits each row as it is pushed, so
// arbitrarily large inputs and outputs need not fit in memory.
//
// # Lenient parsing
//
// Parsing is total: there are no reject states, and malformed-but-common
// CSV variants are accepted rather than rejected. Unescaped quotes inside
// unquoted fields are literal text, text trailing a closed quoted run is
// appended literally, a lone CR is a literal character (only CRLF and bare
// LF terminate rows), and rows in the same stream may have different field
// counts. A leading byte-order mark is stripped once per stream. Because
// of this leniency the in-memory Parse has no error result.
//
// # Writing
//
// Encoding is strict RFC 4180 output: fields containing a comma, quote,
// CR, or LF are quoted with internal quotes doubled, all other fields are
// emitted verbatim, and every row is terminated with CRLF.
//
// # Thread safety
//
// Independent Readers, Writers, and Transforms share no state and may be
// used concurrently with each other. A single instance is owned by one
// pipeline and must not be used from multiple goroutines at once.
//
// # Example
//
//	in, _ := os.Open("people.csv")
//	out, _ := os.Create("upper.csv")
//
//	src := csv.NewReader(in)
//	dst := csv.NewWriter(out)
//	defer dst.Close()
//
//	upper := csv.NewTransform(src, func(row []string, index int) []string {
//	    mapped := make([]string, len(row))
//	    for i, f := range row {
//	        mapped[i] = strings.ToUpper(f)
//	    }
//	    return mapped
//	}, csv.DefaultTransformOptions())
//
//	if _, err := csv.Copy(dst, upper); err != nil {
//	    // handle error
//	}
package csv

import (
	"io"

	"github.com/shapestone/csvstream/internal/tokenizer"
)

// Parse parses a complete CSV document held in memory.
//
// Parsing is lenient and total, so there is no error result: every input
// maps to some row sequence. An empty input yields exactly one row with one
// empty field.
//
// For large documents or streaming sources, use NewReader instead.
//
// Example:
//
//	rows := csv.Parse("name,age\r\nAlice,30\r\nBob,25\r\n")
//	// rows: [][]string{{"name", "age"}, {"Alice", "30"}, {"Bob", "25"}}
func Parse(input string) [][]string {
	tok := tokenizer.New()
	rows := tok.Feed(input)
	if row, ok := tok.Flush(); ok {
		rows = append(rows, row)
	}
	return rows
}

// ReadAll drains an input stream into memory through a Reader.
//
// The reader is released (closed, if it implements io.Closer) before
// ReadAll returns. On error the rows read so far are returned along with
// the error.
func ReadAll(r io.Reader) ([][]string, error) {
	src := NewReader(r)
	var rows [][]string
	for src.Scan() {
		rows = append(rows, src.Row())
	}
	return rows, src.Err()
}

// WriteAll encodes rows to an output stream in order through a Writer,
// flushing before it returns. The underlying writer is not closed; callers
// that hand WriteAll an io.Closer keep ownership of it.
func WriteAll(w io.Writer, rows [][]string) error {
	dst := NewWriter(w)
	for _, row := range rows {
		if err := dst.Write(row); err != nil {
			return err
		}
	}
	return dst.Flush()
}
