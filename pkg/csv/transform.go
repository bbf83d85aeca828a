package csv

import "github.com/shapestone/csvstream/internal/tokenizer"

// RowSource is the pull side of a row pipeline: Scan advances, Row returns
// the current row, Err reports what ended the sequence. Reader and
// Transform both satisfy it, so stages compose.
type RowSource interface {
	Scan() bool
	Row() []string
	Err() error
}

// MapFunc maps one input row to one output row. index is the absolute
// 0-based position of the row in the source, so a callback can detect the
// header (or any other positional structure) without external mutable
// state. The returned row may grow or shrink the field count freely.
type MapFunc func(row []string, index int) []string

// RawMapFunc maps one input row to raw CSV text representing one row. The
// text is re-tokenized into fields, which lets a callback emit structured
// text instead of assembling a field slice.
type RawMapFunc func(row []string, index int) string

// TransformOptions configures a Transform stage.
type TransformOptions struct {
	// IncludeHeaders controls whether the first row is mapped. When false,
	// the first row passes through to the output untouched and is never
	// given to the callback. Default: false.
	IncludeHeaders bool
}

// DefaultTransformOptions returns the default transform configuration:
// the first row is treated as a passthrough header.
func DefaultTransformOptions() TransformOptions {
	return TransformOptions{
		IncludeHeaders: false,
	}
}

// Transform maps a row source through a per-row function, producing
// exactly one output row per input row, in input order. It is itself a
// RowSource, so transforms chain.
//
// Example:
//
//	src := csv.NewReader(file)
//	stage := csv.NewTransform(src, func(row []string, index int) []string {
//	    return append(row, strconv.Itoa(index))
//	}, csv.DefaultTransformOptions())
//	for stage.Scan() {
//	    // stage.Row() has the extra column; the header row is untouched
//	}
type Transform struct {
	src  RowSource
	fn   MapFunc
	raw  RawMapFunc
	opts TransformOptions

	index int
	row   []string
}

// NewTransform creates a stage that maps each row through fn.
func NewTransform(src RowSource, fn MapFunc, opts TransformOptions) *Transform {
	return &Transform{src: src, fn: fn, opts: opts}
}

// NewRawTransform creates a stage whose callback emits raw CSV text for
// each row; the text is re-tokenized into the output row. Raw text that
// encodes several rows contributes its first row, keeping the one-in
// one-out contract; empty text yields a row with one empty field.
func NewRawTransform(src RowSource, fn RawMapFunc, opts TransformOptions) *Transform {
	return &Transform{src: src, raw: fn, opts: opts}
}

// Scan pulls the next row from the source and maps it. The header row is
// passed through unmapped unless IncludeHeaders is set.
func (t *Transform) Scan() bool {
	if !t.src.Scan() {
		return false
	}
	in := t.src.Row()
	index := t.index
	t.index++

	if index == 0 && !t.opts.IncludeHeaders {
		t.row = in
		return true
	}
	if t.raw != nil {
		t.row = parseRow(t.raw(in, index))
		return true
	}
	t.row = t.fn(in, index)
	return true
}

// Row returns the row produced by the last successful Scan.
func (t *Transform) Row() []string {
	return t.row
}

// Err returns the source's error, if any ended the sequence.
func (t *Transform) Err() error {
	return t.src.Err()
}

// parseRow re-tokenizes raw text as a single row.
func parseRow(text string) []string {
	tok := tokenizer.New()
	if rows := tok.Feed(text); len(rows) > 0 {
		return rows[0]
	}
	// The tokenizer seeds an empty field at stream start, so Flush always
	// yields a row here.
	row, _ := tok.Flush()
	return row
}

// Copy drains a row source into a Writer, preserving order. It returns the
// number of rows written and the first error from either side. The Writer
// is not closed or flushed; the caller keeps ownership.
func Copy(dst *Writer, src RowSource) (int, error) {
	n := 0
	for src.Scan() {
		if err := dst.Write(src.Row()); err != nil {
			return n, err
		}
		n++
	}
	return n, src.Err()
}
