package csv

import (
	"errors"
	"fmt"
)

// Common errors. The tokenizer itself is total and never fails, so every
// error in this package originates from the underlying input or output
// resource.
var (
	// ErrWriterClosed is returned by Writer.Write after the Writer has been
	// closed, either explicitly or as a consequence of a write failure.
	ErrWriterClosed = errors.New("csv: writer is closed")

	// ErrInvalidEncoding indicates the input stream carried invalid UTF-8.
	// The surrounding system owns decoding; the error is propagated rather
	// than letting corrupt bytes masquerade as row content.
	ErrInvalidEncoding = errors.New("csv: invalid character encoding")
)

// IOError wraps a failure of the underlying input or output resource with
// pipeline position context. IO failures are fatal to the pipeline instance:
// the resource has been released and no further rows flow.
type IOError struct {
	// Op is "read", "write", or "close".
	Op string
	// Row is the number of rows fully produced or written before the
	// failure (0-indexed position of the failing row).
	Row int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted message with the failing operation and row.
func (e *IOError) Error() string {
	return fmt.Sprintf("csv: %s failed at row %d: %v", e.Op, e.Row, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
