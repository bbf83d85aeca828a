package csv

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/shapestone/csvstream/internal/tokenizer"
)

// Reader pulls CSV rows one at a time from a character stream.
//
// The input is consumed incrementally: each Scan reads just enough of the
// stream to complete one row, so no more than one row is ever buffered
// ahead of the consumer. A leading byte-order mark is stripped.
//
// If the underlying reader implements io.Closer, the Reader owns it and
// releases it exactly once: on end of input, on error, or on an early
// Close. A failed read ends the sequence; rows already produced stand.
//
// Example:
//
//	file, _ := os.Open("data.csv")
//
//	src := csv.NewReader(file)
//	for src.Scan() {
//	    row := src.Row()
//	    // process row
//	}
//	if err := src.Err(); err != nil {
//	    // handle error
//	}
type Reader struct {
	br  *bufio.Reader
	tok *tokenizer.Tokenizer

	closer   io.Closer
	released bool

	hasHeaders bool
	headers    []string

	row    []string
	rowNum int
	err    error
	eof    bool
	done   bool
}

// NewReader creates a Reader consuming CSV text from r. If r implements
// io.Closer, the Reader takes ownership and releases it when the stream
// ends, fails, or is closed early.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{
		br:  bufio.NewReader(r),
		tok: tokenizer.New(),
	}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd
}

// SetHasHeaders sets whether the first row names the columns. When true,
// the first row is captured for Record name lookup and not returned as
// data. Returns the Reader for method chaining.
//
// Example:
//
//	src := csv.NewReader(reader).SetHasHeaders(true)
func (r *Reader) SetHasHeaders(hasHeaders bool) *Reader {
	r.hasHeaders = hasHeaders
	return r
}

// Scan advances to the next row. It returns false at end of input or on
// error; Err reports which.
func (r *Reader) Scan() bool {
	if r.done {
		return false
	}
	for {
		row, ok := r.next()
		if !ok {
			r.done = true
			return false
		}
		if r.hasHeaders && r.headers == nil {
			r.headers = row
			continue
		}
		r.row = row
		r.rowNum++
		return true
	}
}

// next reads input until the tokenizer completes one row or the stream
// ends. This is the backpressure point: no further input is consumed until
// the consumer pulls again.
func (r *Reader) next() ([]string, bool) {
	if r.eof || r.err != nil {
		return nil, false
	}
	for {
		ch, size, err := r.br.ReadRune()
		if err != nil {
			if err != io.EOF {
				r.fail(&IOError{Op: "read", Row: r.rowNum, Err: err})
				return nil, false
			}
			r.eof = true
			if cerr := r.release(); cerr != nil && r.err == nil {
				r.err = &IOError{Op: "close", Row: r.rowNum, Err: cerr}
			}
			return r.tok.Flush()
		}
		if ch == utf8.RuneError && size == 1 {
			r.fail(&IOError{Op: "read", Row: r.rowNum, Err: ErrInvalidEncoding})
			return nil, false
		}
		if row, ok := r.tok.Accept(ch); ok {
			return row, true
		}
	}
}

// Row returns the row produced by the last successful Scan.
func (r *Reader) Row() []string {
	return r.row
}

// Record returns the current row with header-aware access. Headers are
// populated only when SetHasHeaders(true) was used.
func (r *Reader) Record() Record {
	return Record{fields: r.row, headers: r.headers}
}

// Headers returns the header row captured by SetHasHeaders(true), or nil.
func (r *Reader) Headers() []string {
	return r.headers
}

// Err returns the error that ended scanning, or nil at clean end of input.
func (r *Reader) Err() error {
	return r.err
}

// Close cancels the stream early, releasing the underlying resource. Any
// partially buffered row is discarded. Close is idempotent and safe to
// defer alongside normal consumption.
func (r *Reader) Close() error {
	r.done = true
	return r.release()
}

// fail records the terminal error and releases the input resource.
func (r *Reader) fail(err error) {
	r.err = err
	_ = r.release()
}

// release closes the underlying resource at most once.
func (r *Reader) release() error {
	if r.released {
		return nil
	}
	r.released = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
