package csv

import (
	"bufio"
	"io"
)

// Writer pushes rows in order to an output stream, encoding each with
// EncodeRow semantics. Output is buffered; Close (or Flush) makes it
// durable.
//
// If the underlying writer implements io.Closer, the Writer owns it and
// releases it exactly once, on Close or on the first write failure. After
// a failure the error is sticky and no further rows are accepted; rows
// already written are not rolled back.
//
// Example:
//
//	file, _ := os.Create("out.csv")
//
//	dst := csv.NewWriter(file)
//	defer dst.Close()
//
//	if err := dst.Write([]string{"name", "age"}); err != nil {
//	    // handle error
//	}
type Writer struct {
	bw *bufio.Writer

	closer   io.Closer
	released bool

	rowNum int
	err    error
	closed bool
}

// NewWriter creates a Writer emitting CSV text to w. If w implements
// io.Closer, the Writer takes ownership and releases it on Close or on
// write failure.
func NewWriter(w io.Writer) *Writer {
	wr := &Writer{bw: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		wr.closer = c
	}
	return wr
}

// Write encodes one row and appends it to the output, preserving push
// order. It returns ErrWriterClosed after Close, and the sticky *IOError
// after a failed write.
func (w *Writer) Write(row []string) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrWriterClosed
	}
	buf := getBuffer()
	buf = appendRow(buf, row)
	_, err := w.bw.Write(buf)
	putBuffer(buf)
	if err != nil {
		w.fail(err)
		return w.err
	}
	w.rowNum++
	return nil
}

// Flush forces buffered output to the underlying writer without releasing
// it. Close flushes implicitly; Flush exists for callers that keep the
// underlying resource open.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrWriterClosed
	}
	if err := w.bw.Flush(); err != nil {
		w.fail(err)
		return w.err
	}
	return nil
}

// Err returns the sticky error from a failed write, if any.
func (w *Writer) Err() error {
	return w.err
}

// Close flushes buffered output and releases the underlying resource
// exactly once. Close is idempotent; after Close, Write returns
// ErrWriterClosed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	var first error
	if w.err == nil {
		if err := w.bw.Flush(); err != nil {
			w.err = &IOError{Op: "write", Row: w.rowNum, Err: err}
			first = w.err
		}
	}
	if cerr := w.release(); cerr != nil && first == nil {
		first = &IOError{Op: "close", Row: w.rowNum, Err: cerr}
	}
	return first
}

// fail records the terminal write error and releases the output resource.
func (w *Writer) fail(err error) {
	w.err = &IOError{Op: "write", Row: w.rowNum, Err: err}
	_ = w.release()
}

// release closes the underlying resource at most once.
func (w *Writer) release() error {
	if w.released {
		return nil
	}
	w.released = true
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
